package state

import "github.com/artti-capital/linea/internal/models"

// Projects returns copies of all projects.
func (s *Store) Projects() []models.Project {
	out := make([]models.Project, len(s.projects))
	for n, p := range s.projects {
		out[n] = p
		out[n].Members = append([]models.User(nil), p.Members...)
		out[n].Milestones = append([]models.Milestone(nil), p.Milestones...)
		if p.Lead != nil {
			lead := *p.Lead
			out[n].Lead = &lead
		}
	}
	return out
}

// Project returns one project by id or name.
func (s *Store) Project(ref string) (models.Project, bool) {
	for _, p := range s.projects {
		if p.ID == ref || p.Name == ref {
			c := p
			c.Members = append([]models.User(nil), p.Members...)
			c.Milestones = append([]models.Milestone(nil), p.Milestones...)
			return c, true
		}
	}
	return models.Project{}, false
}

// AddProject registers a new project. A missing id is generated; a missing
// status defaults to planned.
func (s *Store) AddProject(p models.Project) models.Project {
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.Status == "" {
		p.Status = models.ProjectPlanned
	}
	s.projects = append(s.projects, p)
	s.persist()
	return p
}

// UpdateProject replaces mutable project fields. Unknown ids are ignored.
func (s *Store) UpdateProject(id string, apply func(*models.Project)) bool {
	for n := range s.projects {
		if s.projects[n].ID == id {
			apply(&s.projects[n])
			s.persist()
			return true
		}
	}
	return false
}

// Cycles returns copies of all cycles.
func (s *Store) Cycles() []models.Cycle {
	return append([]models.Cycle(nil), s.cycles...)
}

// Cycle returns one cycle by id or name.
func (s *Store) Cycle(ref string) (models.Cycle, bool) {
	if c := s.findCycle(ref); c != nil {
		return *c, true
	}
	return models.Cycle{}, false
}

// AddCycle registers a new cycle, numbering it after the highest existing
// cycle when no number is given.
func (s *Store) AddCycle(c models.Cycle) models.Cycle {
	if c.ID == "" {
		c.ID = s.newID()
	}
	if c.Number == 0 {
		for _, existing := range s.cycles {
			if existing.Number >= c.Number {
				c.Number = existing.Number + 1
			}
		}
		if c.Number == 0 {
			c.Number = 1
		}
	}
	s.cycles = append(s.cycles, c)
	s.persist()
	return c
}

func (s *Store) findCycle(ref string) *models.Cycle {
	for n := range s.cycles {
		if s.cycles[n].ID == ref || s.cycles[n].Name == ref {
			return &s.cycles[n]
		}
	}
	return nil
}
