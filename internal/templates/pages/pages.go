// Package pages contains the site's HTML components. They are small enough
// to be built by hand as templ components rather than generated.
package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/fixfirst/fixfirst/internal/db"
)

// Layout wraps page content in the shared chrome.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/static/css/site.css"></head><body><nav class="site-nav"><a href="/">Home</a><a href="/residential">Residential</a><a href="/commercial">Commercial</a></nav><main>`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><footer class="site-footer"><p>FixFirst Appliance Repair</p></footer></body></html>`)
		return err
	})
}

// Gallery renders the homepage photo grid.
func Gallery(photos []db.Photo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Our Work</h1><div class="gallery">`); err != nil {
			return err
		}
		for _, photo := range photos {
			src := photo.ThumbPath
			if src == "" {
				src = photo.ImagePath
			}
			if _, err := fmt.Fprintf(w,
				`<figure class="gallery-item"><a href="%s"><img src="%s" alt="%s" loading="lazy"></a><figcaption>%s</figcaption></figure>`,
				templ.EscapeString(photo.ImagePath),
				templ.EscapeString(src),
				templ.EscapeString(photo.Title),
				templ.EscapeString(photo.Title)); err != nil {
				return err
			}
		}
		if len(photos) == 0 {
			if _, err := io.WriteString(w, `<p class="gallery-empty">Photos coming soon.</p>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Commercial is the commercial services marketing page.
func Commercial() templ.Component {
	return marketingPage("Commercial Services",
		"We keep restaurant, laundromat, and office appliances running. Same-week service for commercial accounts.")
}

// Residential is the residential services marketing page.
func Residential() templ.Component {
	return marketingPage("Residential Services",
		"Refrigerators, ovens, washers, dryers and more, repaired in your home. Book a time slot online.")
}

func marketingPage(heading, blurb string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>%s</h1><p>%s</p><p><a class="cta" href="/#schedule">Schedule a repair</a></p>`,
			templ.EscapeString(heading),
			templ.EscapeString(blurb))
		return err
	})
}

// AdminPhotos renders the internal photo management table.
func AdminPhotos(photos []db.Photo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<h1>Photos</h1><table class="admin-table"><thead><tr><th>ID</th><th>Title</th><th>Image</th><th>Original name</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, photo := range photos {
			if _, err := fmt.Fprintf(w,
				`<tr><td>%d</td><td><form method="post" action="/admin/photos/%d"><input type="text" name="title" value="%s"><button type="submit">Save</button></form></td><td><a href="%s">%s</a></td><td>%s</td><td><form method="post" action="/admin/photos/%d/delete"><button type="submit">Delete</button></form></td></tr>`,
				photo.ID,
				photo.ID,
				templ.EscapeString(photo.Title),
				templ.EscapeString(photo.ImagePath),
				templ.EscapeString(photo.ImagePath),
				templ.EscapeString(photo.OriginalName),
				photo.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}
