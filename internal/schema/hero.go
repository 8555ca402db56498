package schema

// RegisterHero registers the hero section definition.
func RegisterHero(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(SectionDefinition{
		Type:        "hero",
		Name:        "Hero",
		Description: "Large banner with headline, supporting copy, media and call-to-action",
		Category:    "marketing",
		Icon:        "star",
		Variants:    []string{"centered", "split", "minimal"},
		Schema: []FieldSchema{
			{Key: "headline", Type: FieldText, Label: "Headline", Default: "Welcome"},
			{Key: "subheadline", Type: FieldText, Label: "Subheadline"},
			{Key: "body", Type: FieldRichText, Label: "Body"},
			{Key: "media", Type: FieldMedia, Label: "Media"},
			{Key: "cta", Type: FieldLink, Label: "Primary button"},
			{Key: "secondary_cta", Type: FieldLink, Label: "Secondary button"},
			{Key: "show_badge", Type: FieldBoolean, Label: "Show badge"},
			{
				Key:     "alignment",
				Type:    FieldSelect,
				Label:   "Text alignment",
				Default: "center",
				Options: []SelectOption{
					{Value: "left", Label: "Left"},
					{Value: "center", Label: "Center"},
					{Value: "right", Label: "Right"},
				},
			},
		},
		StyleOptions: StyleOptions{
			Global: []StyleOption{
				{Key: "background", Label: "Background", Values: []string{"none", "tint", "image"}, Default: "none"},
				{Key: "spacing", Label: "Spacing", Values: []string{"compact", "normal", "spacious"}, Default: "normal"},
			},
			PerVariant: map[string][]StyleOption{
				"split": {
					{Key: "media_position", Label: "Media position", Values: []string{"left", "right"}, Default: "right"},
				},
			},
		},
		FieldOrder: map[string][]string{
			"minimal": {"headline", "cta", "alignment"},
		},
	})
}
