package service

import (
	"tripmind/entities"
	"tripmind/pkg/plan/types"
)

type MessageService interface {
	// Append records a turn after passing the write_messages gate.
	Append(tripID, senderUserID, role, content string, attached *types.CompositePlan) (*entities.Message, error)
	// List returns the full ordered log after passing the read_messages gate.
	List(tripID, asUserID string) ([]entities.Message, error)
}
