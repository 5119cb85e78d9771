package domain

// Service is a catalog entry: what the client can book
type Service struct {
	Name            string
	DurationMinutes int
	Price           int64 // COP, no cents
}

// Catalog is the read-only service list, ordered as configured
type Catalog struct {
	services []Service
	byName   map[string]Service
}

// NewCatalog builds a catalog; later duplicates of a name are ignored
func NewCatalog(services ...Service) *Catalog {
	c := &Catalog{
		services: make([]Service, 0, len(services)),
		byName:   make(map[string]Service, len(services)),
	}
	for _, s := range services {
		if _, exists := c.byName[s.Name]; exists {
			continue
		}
		c.services = append(c.services, s)
		c.byName[s.Name] = s
	}
	return c
}

// DefaultCatalog returns the shop's standard services
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Service{Name: "Corte", DurationMinutes: 45, Price: 15000},
		Service{Name: "Corte + Barba", DurationMinutes: 60, Price: 20000},
		Service{Name: "Barba", DurationMinutes: 15, Price: 5000},
	)
}

// Get returns the service by name
func (c *Catalog) Get(name string) (Service, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// All returns a copy of every service in catalog order
func (c *Catalog) All() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Len returns the number of services
func (c *Catalog) Len() int {
	return len(c.services)
}
