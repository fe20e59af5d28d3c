package serviceImp

import (
	"strings"

	"tripmind/pkg/plan/types"
	"tripmind/pkg/profile/repository"
)

// ProfileSvc merges stored traveler defaults into a plan request before the
// pipeline runs. The profile is a read-only input: missing profiles are not
// an error, the request simply runs without defaults.
type ProfileSvc struct {
	repo repository.UserRepository
}

func New(repo repository.UserRepository) *ProfileSvc { return &ProfileSvc{repo: repo} }

func (s *ProfileSvc) MergeDefaults(req *types.PlanRequest) {
	u, err := s.repo.FindByUserID(req.UserID)
	if err != nil || u == nil {
		return
	}
	if req.HomeCity == "" {
		req.HomeCity = u.HomeCity
	}
	if req.BudgetUSD == 0 && u.DefaultBudget != nil {
		req.BudgetUSD = *u.DefaultBudget
	}
	if len(req.DietPrefs) == 0 && u.DietPreference != "" {
		for _, p := range strings.Split(u.DietPreference, ",") {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" && p != "none" {
				req.DietPrefs = append(req.DietPrefs, p)
			}
		}
	}
}
