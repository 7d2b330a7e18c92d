package behavior

// Navbar models the navbar classes driven by scroll events
type Navbar struct {
	settings Settings
	lastY    float64

	Scrolled bool
	Hidden   bool
}

// NewNavbar starts tracking from the initial scroll offset
func NewNavbar(settings Settings, initialY float64) *Navbar {
	return &Navbar{settings: settings, lastY: initialY}
}

// Scroll applies one scroll event at offset y
func (n *Navbar) Scroll(y float64) {
	n.Scrolled = y > n.settings.ScrolledOffset
	n.Hidden = n.lastY < y && y > n.settings.HideOffset
	n.lastY = y
}

// Classes returns the navbar classes currently applied
func (n *Navbar) Classes() []string {
	var out []string
	if n.Scrolled {
		out = append(out, ScrolledClass)
	}
	if n.Hidden {
		out = append(out, HiddenClass)
	}
	return out
}
