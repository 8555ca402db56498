package schema

// RegisterFAQ registers the FAQ section definition.
func RegisterFAQ(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister(SectionDefinition{
		Type:        "faq",
		Name:        "FAQ",
		Description: "Collapsible list of questions and answers",
		Category:    "content",
		Icon:        "help",
		Variants:    []string{"accordion", "two-column"},
		Schema: []FieldSchema{
			{Key: "heading", Type: FieldText, Label: "Heading", Default: "Frequently asked questions"},
			{
				Key:   "questions",
				Type:  FieldRepeater,
				Label: "Questions",
				ItemSchema: []FieldSchema{
					{Key: "question", Type: FieldText, Label: "Question", Default: "New question"},
					{Key: "answer", Type: FieldRichText, Label: "Answer"},
				},
				MaxItems: 20,
			},
		},
	})
}
