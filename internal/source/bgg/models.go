package bgg

import "encoding/xml"

// collectionDoc covers the XML replies of the collection endpoint. The root
// element is inspected rather than fixed: the registry answers with <items>
// on success and <errors> when the username is rejected.
type collectionDoc struct {
	XMLName xml.Name
	Message string           `xml:"error>message"`
	Items   []collectionItem `xml:"item"`
}

type collectionItem struct {
	ObjectID  string         `xml:"objectid,attr"`
	Name      collectionName `xml:"name"`
	Thumbnail string         `xml:"thumbnail"`
	Stats     collectionStat `xml:"stats"`
}

// collectionName absorbs both shapes the registry uses: plain text content
// and an attributed node carrying the title in a value attribute.
type collectionName struct {
	Value string `xml:"value,attr"`
	Text  string `xml:",chardata"`
}

type collectionStat struct {
	MinPlayers  string           `xml:"minplayers,attr"`
	MaxPlayers  string           `xml:"maxplayers,attr"`
	PlayingTime string           `xml:"playingtime,attr"`
	Rating      collectionRating `xml:"rating"`
}

type collectionRating struct {
	Average ratingValue `xml:"average"`
}

type ratingValue struct {
	Value string `xml:"value,attr"`
}

// thingDoc covers the metadata-by-id endpoint.
type thingDoc struct {
	XMLName xml.Name
	Items   []thingItem `xml:"item"`
}

type thingItem struct {
	ID    string      `xml:"id,attr"`
	Links []thingLink `xml:"link"`
}

type thingLink struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}
