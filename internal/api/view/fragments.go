// Package view turns persistence rows into the HTML fragments and page
// models the templates render. Assemblers are pure: rows in, escaped
// markup out.
package view

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/cse-motors/dealership/internal/core/domain"
)

// Nav builds the site navigation list from the classification rows.
func Nav(classifications []domain.Classification) template.HTML {
	var b strings.Builder
	b.WriteString(`<ul class="nav">`)
	b.WriteString(`<li><a href="/" title="Home page">Home</a></li>`)
	for _, c := range classifications {
		name := template.HTMLEscapeString(c.Name)
		fmt.Fprintf(&b, `<li><a href="/inv/type/%d" title="See our %s inventory">%s</a></li>`, c.ID, name, name)
	}
	b.WriteString(`</ul>`)
	return template.HTML(b.String())
}

// NavFallback is the bare navigation used when the classification query
// fails; the page still renders.
func NavFallback() template.HTML {
	return template.HTML(`<ul class="nav"><li><a href="/" title="Home page">Home</a></li></ul>`)
}

// ClassificationGrid builds the vehicle grid for a classification page.
// Empty input yields an explicit no-results fragment, never an empty list.
func ClassificationGrid(vehicles []domain.Vehicle) template.HTML {
	if len(vehicles) == 0 {
		return template.HTML(`<p class="notice">No vehicles found for this classification.</p>`)
	}

	var b strings.Builder
	b.WriteString(`<ul id="inv-display">`)
	for _, v := range vehicles {
		name := template.HTMLEscapeString(v.Make + " " + v.Model)
		href := fmt.Sprintf("/inv/detail/%d", v.ID)
		fmt.Fprintf(&b, `<li><a href="%s" title="View %s details"><img src="%s" alt="Image of %s"></a>`,
			href, name, template.HTMLEscapeString(v.Thumbnail), name)
		fmt.Fprintf(&b, `<div class="namePrice"><h2><a href="%s">%s</a></h2><span>$%s</span></div></li>`,
			href, name, FormatPrice(v.Price))
	}
	b.WriteString(`</ul>`)
	return template.HTML(b.String())
}

// VehicleDetail builds the detail block for a single vehicle.
func VehicleDetail(v *domain.Vehicle) template.HTML {
	name := template.HTMLEscapeString(v.Make + " " + v.Model)
	var b strings.Builder
	b.WriteString(`<div class="vehicle-detail">`)
	fmt.Fprintf(&b, `<img src="%s" alt="%s">`, template.HTMLEscapeString(v.Image), name)
	b.WriteString(`<div class="vehicle-info">`)
	fmt.Fprintf(&b, `<h2>%s Details</h2>`, name)
	fmt.Fprintf(&b, `<p class="price"><strong>Price: $%s</strong></p>`, FormatPrice(v.Price))
	fmt.Fprintf(&b, `<p><strong>Year:</strong> %d</p>`, v.Year)
	fmt.Fprintf(&b, `<p><strong>Mileage:</strong> %s</p>`, groupDigits(strconv.Itoa(v.Miles)))
	fmt.Fprintf(&b, `<p><strong>Color:</strong> %s</p>`, template.HTMLEscapeString(v.Color))
	fmt.Fprintf(&b, `<p><strong>Description:</strong> %s</p>`, template.HTMLEscapeString(v.Description))
	b.WriteString(`</div></div>`)
	return template.HTML(b.String())
}

// ClassificationSelect builds the classification dropdown, marking the
// given id selected on sticky re-renders (0 selects nothing).
func ClassificationSelect(classifications []domain.Classification, selectedID int) template.HTML {
	var b strings.Builder
	b.WriteString(`<select name="classification_id" id="classificationList" required>`)
	b.WriteString(`<option value="">Choose a Classification</option>`)
	for _, c := range classifications {
		selected := ""
		if selectedID != 0 && c.ID == selectedID {
			selected = ` selected`
		}
		fmt.Fprintf(&b, `<option value="%d"%s>%s</option>`, c.ID, selected, template.HTMLEscapeString(c.Name))
	}
	b.WriteString(`</select>`)
	return template.HTML(b.String())
}

// FormatPrice renders a price with thousands separators, keeping cents
// only when present.
func FormatPrice(price float64) string {
	s := strconv.FormatFloat(price, 'f', 2, 64)
	if strings.HasSuffix(s, ".00") {
		s = s[:len(s)-3]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	grouped := groupDigits(intPart)
	if frac != "" {
		return grouped + "." + frac
	}
	return grouped
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
