package serviceImp

import (
	"encoding/json"

	"tripmind/entities"
	accessSvc "tripmind/pkg/access/service"
	"tripmind/pkg/message/repository"
	"tripmind/pkg/message/service"
	"tripmind/pkg/plan/types"
)

type MsgSvc struct {
	repo repository.MessageRepository
	gate accessSvc.AccessService
}

func New(repo repository.MessageRepository, gate accessSvc.AccessService) service.MessageService {
	return &MsgSvc{repo: repo, gate: gate}
}

func (s *MsgSvc) Append(tripID, senderUserID, role, content string, attached *types.CompositePlan) (*entities.Message, error) {
	if err := s.gate.Authorize(tripID, senderUserID, accessSvc.ActionWriteMessages); err != nil {
		return nil, err
	}
	m := &entities.Message{
		TripID:       tripID,
		SenderUserID: senderUserID,
		Role:         role,
		Content:      content,
	}
	if attached != nil {
		b, err := json.Marshal(attached)
		if err != nil {
			return nil, err
		}
		m.PlanJSON = string(b)
	}
	if err := s.repo.Append(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MsgSvc) List(tripID, asUserID string) ([]entities.Message, error) {
	if err := s.gate.Authorize(tripID, asUserID, accessSvc.ActionReadMessages); err != nil {
		return nil, err
	}
	return s.repo.List(tripID)
}
