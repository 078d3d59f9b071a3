package form

import "confmatch/internal/model"

// DefaultSchema is the conference matchmaking onboarding questionnaire.
// Section order drives navigation; question keys are the persistence
// keys and must stay stable across releases.
func DefaultSchema() model.Schema {
	return model.Schema{
		{
			Name: "About You",
			Items: []model.Question{
				{
					Key:         "full_name",
					Type:        model.QuestionTypeShortText,
					Question:    "What is your full name?",
					Placeholder: "e.g. Dr. Maria Alvarez",
					Required:    true,
				},
				{
					Key:         "affiliation",
					Type:        model.QuestionTypeShortText,
					Question:    "What is your primary affiliation?",
					Placeholder: "University, lab or company",
					Required:    true,
				},
				{
					Key:      "career_stage",
					Type:     model.QuestionTypeSingleSelect,
					Question: "What best describes your career stage?",
					Required: true,
					Options: []string{
						"Graduate Student",
						"Postdoctoral Researcher",
						"Faculty",
						"Industry Researcher",
						"Other",
					},
					AllowOther: true,
				},
				{
					Key:         "linkedin_url",
					Type:        model.QuestionTypeShortText,
					Question:    "Link to your LinkedIn profile (optional)",
					Placeholder: "https://linkedin.com/in/...",
				},
			},
		},
		{
			Name: "Research Profile",
			Items: []model.Question{
				{
					Key:      "research_areas",
					Type:     model.QuestionTypeMultiSelect,
					Question: "Which research areas do you work in?",
					Required: true,
					Options: []string{
						"Machine Learning",
						"Signal Processing",
						"Computer Vision",
						"Robotics",
						"Communications",
						"Power Systems",
						"Biomedical Engineering",
					},
					AllowCustomOption: true,
				},
				{
					Key:      "methods",
					Type:     model.QuestionTypeMultiSelect,
					Question: "Which methods or tools are central to your work?",
					Options: []string{
						"Deep Learning",
						"Optimization",
						"Statistical Modeling",
						"Simulation",
						"Field Experiments",
						"Hardware Prototyping",
					},
					AllowCustomOption: true,
				},
			},
		},
		{
			Name: "Collaboration",
			Items: []model.Question{
				{
					Key:      "collab_goals",
					Type:     model.QuestionTypeMultiSelect,
					Question: "What are you hoping to find at this conference?",
					Required: true,
					Options: []string{
						"Co-authors",
						"Project partners",
						"Dataset or instrument sharing",
						"Mentorship",
						"Funding partners",
					},
					AllowCustomOption: true,
				},
				{
					Key:      "top_3_collab_topics",
					Type:     model.QuestionTypeCollabTopics,
					Question: "List up to 3 topics you want to collaborate on",
				},
			},
		},
		{
			Name: "Your Research Questions",
			Items: []model.Question{
				{
					Key:      "problems_top_questions",
					Type:     model.QuestionTypeResearch,
					Question: "What are the top research questions you want to tackle this year?",
					Required: true,
				},
			},
		},
	}
}
