package domain

// Portfolio is the complete content of the page
type Portfolio struct {
	Owner       string       `toml:"owner"`
	Headline    string       `toml:"headline"` // shown in the navigation bar
	Hero        Hero         `toml:"hero"`
	Metrics     []Metric     `toml:"metrics"`
	Impact      Section      `toml:"impact"`
	CaseStudies []CaseStudy  `toml:"case_studies"`
	Skills      Section      `toml:"skills"`
	SkillGroups []SkillGroup `toml:"skill_groups"`
	Vision      string       `toml:"vision"`
	Contact     Contact      `toml:"contact"`
}

// Hero is the banner at the top of the page
type Hero struct {
	Title     string   `toml:"title"`
	Highlight string   `toml:"highlight"` // second, accented title line
	Subtitle  string   `toml:"subtitle"`
	Actions   []string `toml:"actions"`
}

// Section is a heading with an introduction line
type Section struct {
	Title string `toml:"title"`
	Intro string `toml:"intro"`
}

// Metric is one figure in the metrics grid
type Metric struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

// CaseStudy is one impact story
type CaseStudy struct {
	ID        string   `toml:"id"`
	Title     string   `toml:"title"`
	Role      string   `toml:"role"`
	Icon      string   `toml:"icon"`
	Challenge string   `toml:"challenge"`
	Process   []string `toml:"process"`
	Solution  string   `toml:"solution"`
	Impact    []string `toml:"impact"`
	Documents []string `toml:"documents"`
}

// SkillGroup is one card in the skills grid
type SkillGroup struct {
	Title string   `toml:"title"`
	Icon  string   `toml:"icon"`
	Items []string `toml:"items"`
}

// Contact is the closing call to action
type Contact struct {
	Title     string `toml:"title"`
	Subtitle  string `toml:"subtitle"`
	Email     string `toml:"email"`
	LinkedIn  string `toml:"linkedin"`
	Resume    string `toml:"resume"`
	Copyright string `toml:"copyright"`
}

// Anchor is a navigation target on the page
type Anchor struct {
	ID    string
	Label string
}

// Anchors lists the navigation bar entries
func Anchors() []Anchor {
	return []Anchor{
		{ID: "about", Label: "About"},
		{ID: "impact", Label: "Impact Stories"},
		{ID: "skills", Label: "Skills"},
		{ID: "contact", Label: "Contact"},
	}
}
