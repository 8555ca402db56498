package schema

// RegisterContact registers the contact section definition. The form fields
// live under the dotted repeater key "form.fields" so they nest inside the
// section's form object.
func RegisterContact(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(SectionDefinition{
		Type:        "contact",
		Name:        "Contact",
		Description: "Contact details with a configurable form",
		Category:    "conversion",
		Icon:        "mail",
		Variants:    []string{"stacked", "side-by-side"},
		Schema: []FieldSchema{
			{Key: "heading", Type: FieldText, Label: "Heading", Default: "Get in touch"},
			{Key: "intro", Type: FieldRichText, Label: "Intro"},
			{Key: "email", Type: FieldText, Label: "Contact email"},
			{Key: "form.submit_label", Type: FieldText, Label: "Submit button", Default: "Send"},
			{Key: "form.success_message", Type: FieldText, Label: "Success message", Default: "Thanks, we'll be in touch."},
			{
				Key:   "form.fields",
				Type:  FieldRepeater,
				Label: "Form fields",
				ItemSchema: []FieldSchema{
					{Key: "label", Type: FieldText, Label: "Label", Default: "Field"},
					{Key: "placeholder", Type: FieldText, Label: "Placeholder"},
					{
						Key:     "input",
						Type:    FieldSelect,
						Label:   "Input type",
						Default: "text",
						Options: []SelectOption{
							{Value: "text", Label: "Text"},
							{Value: "email", Label: "Email"},
							{Value: "textarea", Label: "Multi-line"},
							{Value: "checkbox", Label: "Checkbox"},
						},
					},
					{Key: "required", Type: FieldBoolean, Label: "Required"},
				},
				MaxItems: 10,
			},
		},
		StyleOptions: StyleOptions{
			Global: []StyleOption{
				{Key: "field_style", Label: "Field style", Values: []string{"outlined", "filled"}, Default: "outlined"},
			},
		},
	})
}
