package schema

// DefaultRegistry returns a registry pre-populated with the built-in section
// definitions.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	RegisterDefaults(reg)
	return reg
}

// RegisterDefaults adds the built-in section definitions to the provided
// registry.
func RegisterDefaults(reg *Registry) {
	if reg == nil {
		return
	}

	RegisterHero(reg)
	RegisterCards(reg)
	RegisterGallery(reg)
	RegisterTestimonials(reg)
	RegisterFAQ(reg)
	RegisterContact(reg)
	RegisterSocialLinks(reg)
}
