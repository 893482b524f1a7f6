package web

import "fmt"

// Hypermedia link assembly, kept as pure functions from ids to hrefs so
// nothing in the core depends on the routing table.

type link struct {
	Href string `json:"href"`
}

type links map[string]link

func shopCollectionHref() string {
	return "/shops"
}

func shopPicturesHref(shopID int64) string {
	return fmt.Sprintf("/shops/%d/pictures", shopID)
}

// shopLinks points self and all at the collection: that is where shops are
// listed and created, and there is no single-shop endpoint.
func shopLinks() links {
	return links{
		"self": {Href: shopCollectionHref()},
		"all":  {Href: shopCollectionHref()},
	}
}

func pictureLinks(shopID int64) links {
	href := shopPicturesHref(shopID)
	return links{
		"self":   {Href: href},
		"delete": {Href: href},
		"all":    {Href: href},
	}
}

func collectionLinks(href string) links {
	return links{"self": {Href: href}}
}
