package view

import (
	"io/fs"
	"path"

	"golang.org/x/image/webp"
)

// Skill is one entry of the skills grid on the home page.
type Skill struct {
	Name   string
	Icon   string
	Width  int
	Height int
}

// HasSize reports whether the icon dimensions are known, so templates can
// emit width and height attributes.
func (s Skill) HasSize() bool {
	return s.Width > 0 && s.Height > 0
}

var skillDefinitions = []Skill{
	{Name: "Java", Icon: "java.webp"},
	{Name: "SpringBoot", Icon: "spring.webp"},
	{Name: "Typescript", Icon: "Typescript.webp"},
	{Name: "React", Icon: "React.webp"},
	{Name: "Python", Icon: "Python.webp"},
	{Name: "Javascript", Icon: "Javascript.webp"},
	{Name: "HTML", Icon: "HTML5_logo.webp"},
	{Name: "CSS", Icon: "css.webp"},
	{Name: "SQL", Icon: "Sql.webp"},
	{Name: "Mysql", Icon: "mysql.webp"},
	{Name: "Docker", Icon: "docker.webp"},
	{Name: "Git", Icon: "git.webp"},
	{Name: "GitHub", Icon: "GitHub.webp"},
	{Name: "Teaching & Mentoring", Icon: "teach-code.webp"},
}

// LoadSkills returns the skills list with icon dimensions read from dir in
// fsys. Icons that are missing or not valid webp keep zero dimensions.
func LoadSkills(fsys fs.FS, dir string) []Skill {
	skills := make([]Skill, len(skillDefinitions))
	copy(skills, skillDefinitions)

	if fsys == nil {
		return skills
	}

	for i := range skills {
		width, height, ok := iconSize(fsys, path.Join(dir, skills[i].Icon))
		if ok {
			skills[i].Width = width
			skills[i].Height = height
		}
	}
	return skills
}

func iconSize(fsys fs.FS, name string) (int, int, bool) {
	f, err := fsys.Open(name)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, err := webp.DecodeConfig(f)
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
