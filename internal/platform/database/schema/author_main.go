package schema

import "github.com/taibuivan/douren/pkg/sqlq"

// AuthorMainTable represents the '"Author_Main"' table (one row per artist)
type AuthorMainTable struct {
	Table         string
	Alias         string
	UUID          string
	Author        string
	Introduction  string
	TwitterLink   string
	YoutubeLink   string
	FacebookLink  string
	InstagramLink string
	PixivLink     string
	PlurkLink     string
	BahaLink      string
	TwitchLink    string
	MyacgLink     string
	StoreLink     string
	OfficialLink  string
	Photo         string
	Tags          string
}

// AuthorMain is the schema definition for "Author_Main"
var AuthorMain = AuthorMainTable{
	Table:         `"Author_Main"`,
	Alias:         "a",
	UUID:          `"uuid"`,
	Author:        `"Author"`,
	Introduction:  `"Introduction"`,
	TwitterLink:   `"Twitter_link"`,
	YoutubeLink:   `"Youtube_link"`,
	FacebookLink:  `"Facebook_link"`,
	InstagramLink: `"Instagram_link"`,
	PixivLink:     `"Pixiv_link"`,
	PlurkLink:     `"Plurk_link"`,
	BahaLink:      `"Baha_link"`,
	TwitchLink:    `"Twitch_link"`,
	MyacgLink:     `"Myacg_link"`,
	StoreLink:     `"Store_link"`,
	OfficialLink:  `"Official_link"`,
	Photo:         `"Photo"`,
	Tags:          `"Tags"`,
}

// From returns the aliased table expression.
func (t AuthorMainTable) From() string { return t.Table + " " + t.Alias }

// Field qualifies a column with the table alias.
func (t AuthorMainTable) Field(column string) sqlq.Column { return sqlq.Field(t.Alias, column) }

// Listed returns the columns projected by artist listings, in scan order.
func (t AuthorMainTable) Listed() []string {
	return []string{
		t.UUID, t.Author, t.Introduction,
		t.TwitterLink, t.YoutubeLink, t.FacebookLink, t.InstagramLink,
		t.PixivLink, t.PlurkLink, t.BahaLink, t.TwitchLink,
		t.MyacgLink, t.StoreLink, t.OfficialLink, t.Photo,
	}
}
