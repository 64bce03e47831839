package models

import "time"

// ContactMessage is an append-only record of a contact form submission.
// The id and timestamp are assigned server-side at creation and never
// change afterwards.
type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Subject   string    `json:"subject" bson:"subject" validate:"required"`
	Message   string    `json:"message" bson:"message" validate:"required"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// StatusCheck is an append-only liveness ping recorded by a client.
type StatusCheck struct {
	ID         string    `json:"id" bson:"id"`
	ClientName string    `json:"client_name" bson:"client_name" validate:"required"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
