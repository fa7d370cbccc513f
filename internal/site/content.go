// Package site holds the static label content, hero video resolution and the contact form.
package site

// SocialLink is an external profile of the label
type SocialLink struct {
	Label string
	Href  string
}

// Track is one entry of an album's track listing
type Track struct {
	Title    string
	Duration string
	IsTitle  bool
}

// Artist is the featured artist section
type Artist struct {
	Name     string
	Headline string
	Intro    string
	Bio      string
	Image    string
	Genres   []string
}

// Album is the featured release
type Album struct {
	Title       string
	Description string
	Artist      string
	Genre       string
	Label       string
	Status      string
	Cover       string
	Tracks      []Track
}

// Content is everything on the page that does not come from storage
type Content struct {
	Label        string
	Badge        string
	Tagline      string
	Artist       Artist
	Album        Album
	Socials      []SocialLink
	ContactEmail string
	ContactIntro string
	Copyright    string
}

// DefaultContent returns the label's page content. An empty contactEmail keeps the default address.
func DefaultContent(contactEmail string) Content {
	if contactEmail == "" {
		contactEmail = "vaporisrecords@gmail.com"
	}

	return Content{
		Label:   "Vaporis Records",
		Badge:   "Independent Music Label",
		Tagline: "Crafting ethereal soundscapes that linger like melodies unfinished.",
		Artist: Artist{
			Name:     "Vapor",
			Headline: "Meet Vapor",
			Intro: "An artist whose presence lingers in every note, crafting immersive soundscapes " +
				"that embody quiet confidence and timeless elegance.",
			Bio: "Emerging from the depths of electronic music, Vapor creates atmospheric " +
				"tropical house that captures the essence of summer dreams and endless horizons. " +
				"Each track is a journey through ethereal soundscapes designed for both " +
				"contemplation and celebration.",
			Image:  "/static/img/vapor-artist.svg",
			Genres: []string{"Tropical House", "Electronica", "Ambient", "Chillout"},
		},
		Album: Album{
			Title: "Hold Me Close",
			Description: "An upcoming album that captures the warmth of summer nights and the gentle " +
				"embrace of tropical house rhythms.",
			Artist: "Vapor",
			Genre:  "Tropical House / Electronica",
			Label:  "Vaporis Records",
			Status: "Coming Soon",
			Cover:  "/static/img/hold-me-close.svg",
			Tracks: []Track{
				{Title: "Hold Me Close", Duration: "3:24", IsTitle: true},
				{Title: "Hold Me Close (Summer)", Duration: "3:42"},
			},
		},
		Socials: []SocialLink{
			{Label: "Instagram", Href: "https://instagram.com/vaporisrecords"},
			{Label: "Facebook", Href: "https://facebook.com/vaporisrecords"},
			{Label: "YouTube", Href: "https://youtube.com/@VaporisRecords"},
			{Label: "TikTok", Href: "https://tiktok.com/@vaporisrecords"},
			{Label: "Twitter", Href: "https://x.com/vaporisrecords"},
		},
		ContactEmail: contactEmail,
		ContactIntro: "Interested in working with Vaporis Records? We're always looking for " +
			"talented artists and meaningful collaborations.",
		Copyright: "© 2025 Vaporis Records. All rights reserved.",
	}
}
