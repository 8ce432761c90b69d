package tournamenthandlers

import "github.com/ThreeDotsLabs/watermill/message"

// Handlers defines the event handlers for the tournament module.
type Handlers interface {
	HandleScoreUpdated(msg *message.Message) ([]*message.Message, error)
	HandleSuddenDeathChanged(msg *message.Message) ([]*message.Message, error)
	HandleCoursesAssigned(msg *message.Message) ([]*message.Message, error)
}
