// internal/domain/models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead is a stored contact-form submission.
//
// Reference is the public identifier shown to the visitor and quoted in
// notification email; the Mongo ObjectID never leaves the server.
type Lead struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Reference    string             `bson:"reference"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Organization string             `bson:"organization,omitempty"`
	Role         string             `bson:"role,omitempty"`
	Message      string             `bson:"message"`
	Status       string             `bson:"status"` // new, contacted, closed
	Forwarded    bool               `bson:"forwarded"`
	RemoteIP     string             `bson:"remote_ip,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// LeadStatusNew is the status assigned to every incoming lead.
const LeadStatusNew = "new"

// RoleLabels are the selectable "your role" options on the contact form.
// The field is optional; an empty value is always accepted.
var RoleLabels = []string{
	"Institutional Investor",
	"Government / Debt Office",
	"Bank / Primary Dealer",
	"Advisor / Consultant",
	"Press",
	"Other",
}
