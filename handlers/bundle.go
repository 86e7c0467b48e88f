package handlers

// HandlerBundle groups every handler so the router takes a single
// dependency.
type HandlerBundle struct {
	Auth      *AuthHandler
	Admin     *AdminHandler
	Business  *BusinessHandler
	Event     *EventHandler
	Mosque    *MosqueHandler
	Medical   *MedicalHandler
	Emergency *EmergencyHandler
}
