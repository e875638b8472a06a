package store

import "github.com/malekluka/malek-kanban-portfolio/internal/model"

func intPtr(v int) *int { return &v }

func checklist(items ...model.SubtaskItem) *model.Subtasks {
	st := &model.Subtasks{Items: items}
	st.Recount()
	return st
}

// Seed returns a fresh copy of the board shown on first launch.
func Seed() []model.Column {
	return []model.Column{
		{
			ID:    "backlog",
			Title: "Backlog",
			Color: model.ColorSlate,
			Tasks: []model.Task{
				{
					ID:          "1",
					Title:       "User Authentication System",
					Description: "Implement JWT-based authentication with role management and password reset functionality",
					Priority:    model.PriorityHigh,
					Status:      model.StatusTodo,
					Assignee:    model.Assignee{Name: "Sarah Chen", Initials: "SC", Color: "from-pink-500 to-purple-600"},
					DueDate:     "2025-09-05",
					Tags:        []string{"Backend", "Security", "API"},
					Subtasks: checklist(
						model.SubtaskItem{ID: "s1", Title: "Setup JWT library", Done: true},
						model.SubtaskItem{ID: "s2", Title: "Create auth middleware", Done: true},
						model.SubtaskItem{ID: "s3", Title: "Build login endpoint"},
						model.SubtaskItem{ID: "s4", Title: "Add password reset"},
						model.SubtaskItem{ID: "s5", Title: "Role management"},
					),
					Comments:  3,
					CreatedAt: "2025-08-20",
				},
				{
					ID:          "2",
					Title:       "Mobile App Redesign",
					Description: "Complete UI/UX overhaul for mobile experience with new design system",
					Priority:    model.PriorityMedium,
					Status:      model.StatusTodo,
					Assignee:    model.Assignee{Name: "Alex Kim", Initials: "AK", Color: "from-blue-500 to-cyan-600"},
					DueDate:     "2025-09-12",
					Tags:        []string{"Design", "Mobile", "UX"},
					Subtasks: checklist(
						model.SubtaskItem{ID: "s6", Title: "User research", Done: true},
						model.SubtaskItem{ID: "s7", Title: "Wireframes"},
						model.SubtaskItem{ID: "s8", Title: "Visual design"},
						model.SubtaskItem{ID: "s9", Title: "Prototyping"},
						model.SubtaskItem{ID: "s10", Title: "User testing"},
					),
					Comments:  7,
					CreatedAt: "2025-08-22",
				},
			},
		},
		{
			ID:    "todo",
			Title: "To Do",
			Color: model.ColorBlue,
			Limit: intPtr(5),
			Tasks: []model.Task{
				{
					ID:          "3",
					Title:       "API Rate Limiting",
					Description: "Implement Redis-based rate limiting for all API endpoints",
					Priority:    model.PriorityHigh,
					Status:      model.StatusTodo,
					Assignee:    model.Assignee{Name: "Mike Johnson", Initials: "MJ", Color: "from-green-500 to-emerald-600"},
					DueDate:     "2025-09-01",
					Tags:        []string{"Backend", "Performance"},
					Subtasks: checklist(
						model.SubtaskItem{ID: "s11", Title: "Setup Redis"},
						model.SubtaskItem{ID: "s12", Title: "Rate limit middleware"},
						model.SubtaskItem{ID: "s13", Title: "Testing"},
					),
					Comments:  2,
					CreatedAt: "2025-08-28",
				},
			},
		},
		{
			ID:    "progress",
			Title: "In Progress",
			Color: model.ColorAmber,
			Limit: intPtr(3),
			Tasks: []model.Task{
				{
					ID:          "4",
					Title:       "Payment Integration",
					Description: "Integrate Stripe payment processing with webhook handling",
					Priority:    model.PriorityHigh,
					Status:      model.StatusInProgress,
					Assignee:    model.Assignee{Name: "Emma Davis", Initials: "ED", Color: "from-orange-500 to-red-600"},
					DueDate:     "2025-09-02",
					Tags:        []string{"Backend", "Payments"},
					Subtasks: checklist(
						model.SubtaskItem{ID: "s14", Title: "Stripe setup", Done: true},
						model.SubtaskItem{ID: "s15", Title: "Payment endpoints", Done: true},
						model.SubtaskItem{ID: "s16", Title: "Webhook handling", Done: true},
						model.SubtaskItem{ID: "s17", Title: "Error handling", Done: true},
						model.SubtaskItem{ID: "s18", Title: "Testing"},
						model.SubtaskItem{ID: "s19", Title: "Documentation"},
						model.SubtaskItem{ID: "s20", Title: "Security review"},
					),
					Comments:  12,
					CreatedAt: "2025-08-18",
				},
			},
		},
		{
			ID:    "review",
			Title: "Code Review",
			Color: model.ColorPurple,
			Limit: intPtr(2),
			Tasks: []model.Task{
				{
					ID:          "5",
					Title:       "Security Audit",
					Description: "Complete security review for authentication module",
					Priority:    model.PriorityHigh,
					Status:      model.StatusInProgress,
					Assignee:    model.Assignee{Name: "David Wilson", Initials: "DW", Color: "from-purple-500 to-indigo-600"},
					DueDate:     "2025-08-31",
					Tags:        []string{"Security", "Review"},
					Subtasks: checklist(
						model.SubtaskItem{ID: "s21", Title: "Code analysis", Done: true},
						model.SubtaskItem{ID: "s22", Title: "Vulnerability scan", Done: true},
						model.SubtaskItem{ID: "s23", Title: "Report writing"},
					),
					Comments:  5,
					CreatedAt: "2025-08-26",
				},
			},
		},
		{
			ID:    "done",
			Title: "Done",
			Color: model.ColorGreen,
			Tasks: []model.Task{
				{
					ID:          "6",
					Title:       "Database Schema Design",
					Description: "Finalized PostgreSQL schema with proper indexing and relationships",
					Priority:    model.PriorityHigh,
					Status:      model.StatusDone,
					Assignee:    model.Assignee{Name: "Lisa Park", Initials: "LP", Color: "from-teal-500 to-blue-600"},
					DueDate:     "2025-08-25",
					Tags:        []string{"Database", "Architecture"},
					Subtasks: checklist(
						model.SubtaskItem{ID: "s24", Title: "Schema design", Done: true},
						model.SubtaskItem{ID: "s25", Title: "Index optimization", Done: true},
						model.SubtaskItem{ID: "s26", Title: "Relationships mapping", Done: true},
						model.SubtaskItem{ID: "s27", Title: "Performance testing", Done: true},
					),
					Comments:  8,
					CreatedAt: "2025-08-15",
				},
			},
		},
	}
}
