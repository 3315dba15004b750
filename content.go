package portfolio

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultProfile returns the built-in hero, about, skills and contact content.
func DefaultProfile() Profile {
	return Profile{
		Name:      "Isaac Munyaka",
		Tagline:   "Data Analytics || Business Intelligence || Machine Learning",
		ResumeURL: "/resume.pdf",
		About: "I am passionate about data-driven decision-making through leveraging " +
			"data and making inferences that can be translated into substantial " +
			"deliverables. I specialize in dashboards, algorithms, software and " +
			"LLMs that deliver intelligent insights.",
		Skills: []string{
			"Python",
			"SQL",
			"Tableau",
			"Power BI",
			"Data Storytelling",
			"Machine Learning",
			"EDA",
			"Dashboards",
		},
		ContactBlurb: "Let’s connect! I am open to opportunities in Data Analytics, BI, and ML.",
		Email:        "isaacmunyaka98@gmail.com",
		GitHub:       "https://github.com/Isaac-Munyaka",
		LinkedIn:     "https://www.linkedin.com/in/isaac-munyaka",
	}
}

// DefaultProjects returns the built-in project list.
func DefaultProjects() []Project {
	return []Project{
		{
			Title:       "Closed Captions",
			Description: "Built a system for generating and displaying closed captions for videos. Focused on natural language processing and text synchronization.",
			Tech:        []string{"Python", "NLP", "Speech-to-Text"},
			Link:        "https://github.com/Isaac-Munyaka/Closed-captions",
		},
		{
			Title:       "Plotly Dashboards",
			Description: "Developed interactive dashboards using Plotly for visualizing datasets and creating business intelligence insights.",
			Tech:        []string{"Plotly", "Python", "Data Visualization"},
			Link:        "https://github.com/Isaac-Munyaka/plotly-dashboards",
			Image:       "/images/dashboard.png",
		},
		{
			Title:       "Capstone Group 4",
			Description: "Collaborated on a capstone project solving real-world data challenges through machine learning and analytics.",
			Tech:        []string{"Machine Learning", "EDA", "Python"},
			Link:        "https://github.com/Isaac-Munyaka/Capstone-group-4",
			Image:       "/images/recommender.png",
		},
		{
			Title:       "Phase 4",
			Description: "Exploratory data analysis and advanced analytics project showcasing SQL and data manipulation.",
			Tech:        []string{"SQL", "Pandas", "Data Cleaning"},
			Link:        "https://github.com/Isaac-Munyaka/Phase-4",
		},
		{
			Title:       "My Book Recommender System",
			Description: "Built a recommendation system for books using collaborative filtering and machine learning.",
			Tech:        []string{"Python", "Recommender Systems", "ML"},
			Link:        "https://github.com/Isaac-Munyaka/my-book-recommender-system",
		},
	}
}

// Content is the page data loaded once at startup.
type Content struct {
	Profile  Profile
	Projects []Project
}

// DefaultContent returns the built-in profile and projects.
func DefaultContent() Content {
	return Content{Profile: DefaultProfile(), Projects: DefaultProjects()}
}

// LoadContent reads profile and projects from a YAML file. An empty path
// returns the defaults. A section missing from the file keeps its default.
func LoadContent(path string) (Content, error) {
	content := DefaultContent()
	if path == "" {
		return content, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Content{}, fmt.Errorf("portfolio: reading content %s: %w", path, err)
	}

	if k.Exists("profile") {
		var p Profile
		if err := k.Unmarshal("profile", &p); err != nil {
			return Content{}, fmt.Errorf("portfolio: decoding profile: %w", err)
		}
		content.Profile = p
	}
	if k.Exists("projects") {
		var projects []Project
		if err := k.Unmarshal("projects", &projects); err != nil {
			return Content{}, fmt.Errorf("portfolio: decoding projects: %w", err)
		}
		for i := range projects {
			projects[i].Tech = FilterEmpty(projects[i].Tech)
		}
		content.Projects = projects
	}
	content.Profile.Skills = FilterEmpty(content.Profile.Skills)

	if err := content.Validate(); err != nil {
		return Content{}, err
	}
	return content, nil
}

// Validate checks that every project has a title and a link.
func (c Content) Validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("portfolio: profile name is required")
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("portfolio: project %d: title is required", i)
		}
		if p.Link == "" {
			return fmt.Errorf("portfolio: project %d (%s): link is required", i, p.Title)
		}
	}
	return nil
}
