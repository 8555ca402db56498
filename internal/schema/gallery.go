package schema

// RegisterGallery registers the gallery section definition.
func RegisterGallery(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(SectionDefinition{
		Type:        "gallery",
		Name:        "Gallery",
		Description: "Image or video gallery",
		Category:    "content",
		Icon:        "image",
		Variants:    []string{"masonry", "grid"},
		Schema: []FieldSchema{
			{Key: "heading", Type: FieldText, Label: "Heading"},
			{
				Key:   "images",
				Type:  FieldRepeater,
				Label: "Media",
				ItemSchema: []FieldSchema{
					{Key: "media.type", Type: FieldSelect, Label: "Kind", Default: "image",
						Options: []SelectOption{{Value: "image"}, {Value: "video"}}},
					{Key: "media.src", Type: FieldImage, Label: "Source"},
					{Key: "caption", Type: FieldText, Label: "Caption"},
				},
				MaxItems: 30,
			},
		},
		StyleOptions: StyleOptions{
			Global: []StyleOption{
				{Key: "gap", Label: "Gap", Values: []string{"none", "small", "large"}, Default: "small"},
				{Key: "rounding", Label: "Corner rounding", Values: []string{"none", "medium", "full"}, Default: "medium"},
			},
		},
	})
}
