package randomuser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Name is a user's title, first and last name.
type Name struct {
	Title string `json:"title" yaml:"title"`
	First string `json:"first" yaml:"first"`
	Last  string `json:"last" yaml:"last"`
}

// Full returns "First Last".
func (n Name) Full() string {
	switch {
	case n.First == "":
		return n.Last
	case n.Last == "":
		return n.First
	}
	return n.First + " " + n.Last
}

type Street struct {
	Number int    `json:"number" yaml:"number"`
	Name   string `json:"name" yaml:"name"`
}

type Coordinates struct {
	Latitude  string `json:"latitude" yaml:"latitude"`
	Longitude string `json:"longitude" yaml:"longitude"`
}

type Timezone struct {
	Offset      string `json:"offset" yaml:"offset"`
	Description string `json:"description" yaml:"description"`
}

// Postcode is always held as a string. Some datasets send numeric postcodes,
// which are kept in their JSON text form.
type Postcode string

// UnmarshalJSON accepts a JSON string or any other scalar.
func (p *Postcode) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return fmt.Errorf("invalid postcode %q", b)
	}
	res := gjson.ParseBytes(b)
	switch res.Type {
	case gjson.String:
		*p = Postcode(res.Str)
	case gjson.Null:
		*p = ""
	default:
		*p = Postcode(bytes.TrimSpace(b))
	}
	return nil
}

func (p Postcode) String() string {
	return string(p)
}

type Location struct {
	Street      Street      `json:"street" yaml:"street"`
	City        string      `json:"city" yaml:"city"`
	State       string      `json:"state" yaml:"state"`
	Country     string      `json:"country" yaml:"country"`
	Postcode    Postcode    `json:"postcode" yaml:"postcode"`
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
	Timezone    Timezone    `json:"timezone" yaml:"timezone"`
}

// Login is the generated credential bundle. Hashes are the upstream's digests
// of Password with Salt, kept as opaque hex strings.
type Login struct {
	UUID     string `json:"uuid" yaml:"uuid"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Salt     string `json:"salt" yaml:"salt"`
	MD5      string `json:"md5" yaml:"md5"`
	SHA1     string `json:"sha1" yaml:"sha1"`
	SHA256   string `json:"sha256" yaml:"sha256"`
}

// ParseUUID parses the login UUID.
func (l Login) ParseUUID() (uuid.UUID, error) {
	return uuid.Parse(l.UUID)
}

// RandomDate is a generated point in time along with the age it implies.
type RandomDate struct {
	Date time.Time `json:"date" yaml:"date"`
	Age  int       `json:"age" yaml:"age"`
}

// Identity is a national identifier. Value is nil when the dataset has a
// named identifier but no value for this user.
type Identity struct {
	Name  string  `json:"name" yaml:"name"`
	Value *string `json:"value" yaml:"value"`
}

type Picture struct {
	Large     string `json:"large" yaml:"large"`
	Medium    string `json:"medium" yaml:"medium"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
}

// User is one generated person. Gender reflects what was requested through
// the Builder, not what the upstream returned; see Builder.Gender.
type User struct {
	Gender      Gender      `json:"gender" yaml:"gender"`
	Name        Name        `json:"name" yaml:"name"`
	Location    Location    `json:"location" yaml:"location"`
	Email       string      `json:"email" yaml:"email"`
	Login       Login       `json:"login" yaml:"login"`
	Birthday    RandomDate  `json:"dob" yaml:"dob"`
	Registered  RandomDate  `json:"registered" yaml:"registered"`
	Phone       string      `json:"phone" yaml:"phone"`
	Cell        string      `json:"cell" yaml:"cell"`
	ID          Identity    `json:"id" yaml:"id"`
	Picture     Picture     `json:"picture" yaml:"picture"`
	Nationality Nationality `json:"nat" yaml:"nat"`
}

// Info describes a batch: the seed that reproduces it, its size, page and the
// API version that produced it.
type Info struct {
	Seed    string `json:"seed" yaml:"seed"`
	Results int    `json:"results" yaml:"results"`
	Page    int    `json:"page" yaml:"page"`
	Version string `json:"version" yaml:"version"`
}

// Result is a successful batch.
type Result struct {
	Users []User `json:"results" yaml:"results"`
	Info  Info   `json:"info" yaml:"info"`
}

// Response is the decoded upstream envelope: either an error message or a
// result. Exactly one of Error and Result is meaningful; Result is nil for
// the error variant.
type Response struct {
	Error  string
	Result *Result
}

// IsError reports whether the envelope carried an upstream error.
func (r *Response) IsError() bool {
	return r.Result == nil
}

// UnmarshalJSON discriminates on key presence: an object with "results" and
// "info" decodes as a Result, otherwise an object with a string "error"
// decodes as an error. Anything else fails.
func (r *Response) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return errMalformedJSON
	}
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return fmt.Errorf("envelope is %s, want object", root.Type)
	}

	results, info := root.Get("results"), root.Get("info")
	var resultErr error
	if results.Exists() {
		if !results.IsArray() || !info.IsObject() {
			resultErr = errMissingResultFields
		} else {
			var res Result
			if resultErr = json.Unmarshal(b, &res); resultErr == nil {
				if res.Users == nil {
					res.Users = []User{}
				}
				*r = Response{Result: &res}
				return nil
			}
		}
	}

	if msg := root.Get("error"); msg.Exists() && msg.Type == gjson.String {
		*r = Response{Error: msg.Str}
		return nil
	}

	if resultErr != nil {
		return resultErr
	}
	return errUnknownEnvelope
}
