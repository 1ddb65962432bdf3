package models

import "encoding/json"

// Catalog rows decoded without an "active" key are active.

func (s *Service) UnmarshalJSON(data []byte) error {
	type plain Service
	row := plain{Active: true}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*s = Service(row)
	return nil
}

func (c *CutStyle) UnmarshalJSON(data []byte) error {
	type plain CutStyle
	row := plain{Active: true}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*c = CutStyle(row)
	return nil
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	row := plain{Active: true}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*p = Product(row)
	return nil
}

func (t *Testimonial) UnmarshalJSON(data []byte) error {
	type plain Testimonial
	row := plain{Active: true}
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	*t = Testimonial(row)
	return nil
}
