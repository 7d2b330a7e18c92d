package behavior

// Theme toggles the "dark" class on the document root. Nothing persists
// across reloads.
type Theme struct {
	Dark bool
}

// Toggle flips the mode and returns the new state
func (t *Theme) Toggle() bool {
	t.Dark = !t.Dark
	return t.Dark
}

// MobileMenu models the menu panel's "visible" class
type MobileMenu struct {
	Visible bool
}

func (m *MobileMenu) Open()  { m.Visible = true }
func (m *MobileMenu) Close() { m.Visible = false }

// EscapeKey is the key that closes an open modal
const EscapeKey = "Escape"

// Modal models the resume modal. While open the overlay carries
// "visible" and the body carries "modal-open".
type Modal struct {
	Visible bool
}

func (m *Modal) Open()  { m.Visible = true }
func (m *Modal) Close() { m.Visible = false }

// ClickOverlay handles a click inside the overlay. Only a click whose
// target is the overlay itself closes the modal.
func (m *Modal) ClickOverlay(targetIsOverlay bool) {
	if targetIsOverlay {
		m.Close()
	}
}

// KeyDown closes the modal on Escape while it is open
func (m *Modal) KeyDown(key string) {
	if key == EscapeKey && m.Visible {
		m.Close()
	}
}

// OverlayClasses returns the overlay's classes
func (m *Modal) OverlayClasses() []string {
	if m.Visible {
		return []string{VisibleClass}
	}
	return nil
}

// BodyClasses returns the document body's classes
func (m *Modal) BodyClasses() []string {
	if m.Visible {
		return []string{ModalOpenClass}
	}
	return nil
}
