package portfolio

// Catalog is the immutable, ordered list of projects supplied at startup.
type Catalog struct {
	projects []Project
	images   map[string]struct{}
}

// NewCatalog copies projects into a new Catalog. Later changes to the
// argument do not affect the catalog.
func NewCatalog(projects []Project) *Catalog {
	c := &Catalog{
		projects: make([]Project, len(projects)),
		images:   make(map[string]struct{}),
	}
	for i, p := range projects {
		p.Tech = append([]string(nil), p.Tech...)
		c.projects[i] = p
		if p.HasImage() {
			c.images[p.Image] = struct{}{}
		}
	}
	return c
}

// Projects returns a copy of the projects in their original order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		p.Tech = append([]string(nil), p.Tech...)
		out[i] = p
	}
	return out
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// Images lists project image URLs in catalog order.
func (c *Catalog) Images() []string {
	var out []string
	for _, p := range c.projects {
		if p.HasImage() {
			out = append(out, p.Image)
		}
	}
	return out
}

// HasImage reports whether url is the image of some project.
func (c *Catalog) HasImage(url string) bool {
	_, ok := c.images[url]
	return ok
}
