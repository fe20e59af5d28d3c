package pipeline

import (
	"fmt"

	"tripmind/pkg/agent"
	"tripmind/pkg/ai"
)

// Stage is one synchronization point: its agents run concurrently and must
// all settle before the next stage opens. DependsOn names earlier stages
// whose merged payloads the member agents may read.
type Stage struct {
	Name      string
	Agents    []agent.Agent
	DependsOn []string
}

// Graph is the static stage list driving a pipeline run. It is data, not
// code: validated once at startup, never mutated at runtime.
type Graph []Stage

// Validate checks the graph shape: unique non-empty stage names, at least one
// agent per stage, and every dependency referring to a strictly earlier
// stage. Forward or unknown references are configuration errors; the ordered
// list makes cycles unrepresentable.
func (g Graph) Validate() error {
	if len(g) == 0 {
		return fmt.Errorf("stage graph is empty")
	}
	seen := map[string]bool{}
	for i, st := range g {
		if st.Name == "" {
			return fmt.Errorf("stage %d has no name", i)
		}
		if seen[st.Name] {
			return fmt.Errorf("duplicate stage %q", st.Name)
		}
		if len(st.Agents) == 0 {
			return fmt.Errorf("stage %q has no agents", st.Name)
		}
		for _, dep := range st.DependsOn {
			if dep == st.Name {
				return fmt.Errorf("stage %q depends on itself", st.Name)
			}
			if !seen[dep] {
				return fmt.Errorf("stage %q depends on %q which is not an earlier stage", st.Name, dep)
			}
		}
		seen[st.Name] = true
	}
	if len(g[0].DependsOn) != 0 {
		return fmt.Errorf("first stage %q cannot have dependencies", g[0].Name)
	}
	return nil
}

// DefaultGraph wires the trip-planning stages: stay first, then the three
// discovery agents fanned out together, then budget, then the planner.
func DefaultGraph(c ai.Client, minLodging int) Graph {
	return Graph{
		{
			Name:   agent.StageStay,
			Agents: []agent.Agent{agent.NewStay(c, minLodging)},
		},
		{
			Name: agent.StageSearch,
			Agents: []agent.Agent{
				agent.NewRestaurant(c),
				agent.NewTravel(c),
				agent.NewExperience(c),
			},
			DependsOn: []string{agent.StageStay},
		},
		{
			Name:      agent.StageBudget,
			Agents:    []agent.Agent{agent.NewBudget()},
			DependsOn: []string{agent.StageStay, agent.StageSearch},
		},
		{
			Name:      agent.StagePlanner,
			Agents:    []agent.Agent{agent.NewPlanner(c)},
			DependsOn: []string{agent.StageStay, agent.StageSearch, agent.StageBudget},
		},
	}
}
