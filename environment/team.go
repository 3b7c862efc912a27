package environment

import (
	"strings"

	"github.com/bizvalid/bizvalid/schema"
)

type Team struct {
	members []schema.Agent
	Leader  schema.Agent
}

func NewTeam() *Team {
	return &Team{
		members: []schema.Agent{},
	}
}

func (t *Team) Member(name string) schema.Agent {
	for _, a := range t.members {
		if strings.EqualFold(a.Name(), name) {
			return a
		}
	}
	return nil
}

func (t *Team) AddMembers(members ...schema.Agent) {
	for _, member := range members {
		if member != nil {
			t.members = append(t.members, member)
		}
	}
}

func (t *Team) Names() []string {
	names := make([]string, 0, len(t.members))
	for _, a := range t.members {
		names = append(names, a.Name())
	}
	return names
}
