package schema

// RegisterSocialLinks registers the social links section definition.
func RegisterSocialLinks(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(SectionDefinition{
		Type:        "social_links",
		Name:        "Social links",
		Description: "Row of social profile links",
		Category:    "footer",
		Icon:        "share",
		Schema: []FieldSchema{
			{
				Key:   "links",
				Type:  FieldRepeater,
				Label: "Profiles",
				ItemSchema: []FieldSchema{
					{
						Key:     "platform",
						Type:    FieldSelect,
						Label:   "Platform",
						Default: "x",
						Options: []SelectOption{
							{Value: "x", Label: "X"},
							{Value: "instagram", Label: "Instagram"},
							{Value: "linkedin", Label: "LinkedIn"},
							{Value: "youtube", Label: "YouTube"},
							{Value: "github", Label: "GitHub"},
						},
					},
					{Key: "url", Type: FieldURL, Label: "Profile URL"},
				},
				MaxItems: 8,
			},
		},
		StyleOptions: StyleOptions{
			Global: []StyleOption{
				{Key: "icon_size", Label: "Icon size", Values: []string{"small", "medium", "large"}, Default: "medium"},
			},
		},
	})
}
