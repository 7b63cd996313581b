package bridge

// Detector implements port.ColorSchemeDetector from the dark-mode signal
// the shim reports.
type Detector struct {
	server *Server
}

// NewDetector creates a detector backed by server.
func NewDetector(server *Server) *Detector {
	return &Detector{server: server}
}

// Name implements port.ColorSchemeDetector.
func (d *Detector) Name() string {
	return "browser"
}

// Priority implements port.ColorSchemeDetector.
func (d *Detector) Priority() int {
	return 100
}

// Available implements port.ColorSchemeDetector.
func (d *Detector) Available() bool {
	_, ok := d.server.AmbientDark()
	return ok
}

// Detect implements port.ColorSchemeDetector.
func (d *Detector) Detect() (bool, bool) {
	return d.server.AmbientDark()
}
