package vin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const nhtsaBase = "https://vpic.nhtsa.dot.gov/api/vehicles/DecodeVINValues/"

// Result is what a decoded VIN contributes to the fitment filters.
type Result struct {
	Make  string
	Model string
	Year  int
}

// Decoder resolves VINs against the NHTSA vPIC service. Single attempt,
// bounded timeout; callers treat a nil result as "decode failed".
type Decoder struct {
	BaseURL string
	Client  *http.Client
}

func NewDecoder() *Decoder {
	return &Decoder{BaseURL: nhtsaBase, Client: &http.Client{Timeout: 8 * time.Second}}
}

func (d *Decoder) Decode(ctx context.Context, vin string) (*Result, error) {
	u := d.BaseURL + url.PathEscape(vin) + "?format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vin decode: HTTP %d", resp.StatusCode)
	}

	var body struct {
		Results []struct {
			Make      string `json:"Make"`
			Model     string `json:"Model"`
			ModelYear string `json:"ModelYear"`
		} `json:"Results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, fmt.Errorf("vin decode: empty result")
	}
	row := body.Results[0]
	r := &Result{Make: row.Make, Model: row.Model}
	if row.ModelYear != "" {
		if y, err := strconv.Atoi(row.ModelYear); err == nil {
			r.Year = y
		}
	}
	return r, nil
}
