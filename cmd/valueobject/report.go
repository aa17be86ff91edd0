package main

import (
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/valueobject/ddd"
	"github.com/go-leo/valueobject/factory"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type result struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Hash  string `json:"hash,omitempty"`

	email ddd.Email
}

type comparison struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Equal    bool   `json:"equal"`
	SameHash bool   `json:"same_hash"`
}

type report struct {
	Results     []result     `json:"results"`
	Comparisons []comparison `json:"comparisons"`
	Distinct    []string     `json:"distinct"`
	Invalid     int          `json:"invalid"`
}

func buildReport(inputs []string, emails factory.Factory[ddd.Email, string]) *report {
	rep := &report{Results: []result{}, Comparisons: []comparison{}, Distinct: []string{}}
	for _, in := range inputs {
		email, err := emails.Create(in)
		if err != nil {
			rep.Results = append(rep.Results, result{Input: in, Error: err.Error()})
			rep.Invalid++
			continue
		}
		rep.Results = append(rep.Results, result{
			Input: in,
			Valid: true,
			Hash:  strconv.FormatUint(email.Hash(), 16),
			email: email,
		})
	}

	valid := rep.valid()
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			rep.Comparisons = append(rep.Comparisons, comparison{
				Left:     valid[i].Value(),
				Right:    valid[j].Value(),
				Equal:    valid[i].Equals(valid[j]),
				SameHash: valid[i].Hash() == valid[j].Hash(),
			})
		}
	}
	for _, e := range ddd.NewSet(valid...).Values() {
		rep.Distinct = append(rep.Distinct, e.Value())
	}
	return rep
}

func (r *report) valid() []ddd.Email {
	var emails []ddd.Email
	for _, res := range r.Results {
		if res.Valid {
			emails = append(emails, res.email)
		}
	}
	return emails
}

func writeReport(w io.Writer, format string, rep *report) error {
	switch format {
	case formatJSON:
		return jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(rep)
	case formatText:
		return writeText(w, rep)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, rep *report) error {
	for _, r := range rep.Results {
		if r.Valid {
			if _, err := fmt.Fprintf(w, "%q: ok hash=%s\n", r.Input, r.Hash); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%q: %s\n", r.Input, r.Error); err != nil {
			return err
		}
	}
	for _, c := range rep.Comparisons {
		if _, err := fmt.Fprintf(w, "%q == %q: equal=%t same_hash=%t\n", c.Left, c.Right, c.Equal, c.SameHash); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "distinct: %d\n", len(rep.Distinct))
	return err
}
