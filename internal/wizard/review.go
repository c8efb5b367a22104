package wizard

// ReviewItem is one answered field on the review step.
type ReviewItem struct {
	FieldID string `json:"field_id"`
	Label   string `json:"label"`
	Value   string `json:"value"`
}

// ReviewSection groups answered fields under their section title. Sections
// with nothing to show are omitted.
type ReviewSection struct {
	Title string       `json:"title"`
	Items []ReviewItem `json:"items"`
}

// Review aggregates the responses for the review step. Empty values are
// skipped, list answers are comma-joined, and fields whose conditional is
// not currently satisfied are excluded even if they hold a stale answer
// from before the controlling field changed.
func (w *Wizard) Review() []ReviewSection {
	w.mu.Lock()
	responses := w.responses.Clone()
	w.mu.Unlock()

	var out []ReviewSection
	for _, section := range w.template.Sections {
		var items []ReviewItem
		for _, f := range section.Fields {
			if !f.Visible(responses) {
				continue
			}
			v, ok := responses[f.ID]
			if !ok || v.IsEmpty() {
				continue
			}
			items = append(items, ReviewItem{FieldID: f.ID, Label: f.Label, Value: v.Text()})
		}
		if len(items) > 0 {
			out = append(out, ReviewSection{Title: section.Title, Items: items})
		}
	}
	return out
}
