package repository

import "tripmind/entities"

// MessageRepository persists the per-trip chat log. Append assigns the next
// message_id; assignment is serialized per trip so the log is a strict total
// order with no duplicates or gaps.
type MessageRepository interface {
	Append(m *entities.Message) error
	List(tripID string) ([]entities.Message, error)
}
