// Package sourcing looks up market data for parts we don't stock: cheapest
// supplier offers (priced with a 75% markup for the AI-sourced listing card)
// and product imagery. Every tier is optional; a missing credential just
// skips to the next one.
package sourcing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ohioautoparts/internal/domain"
)

const (
	serpAPIBase     = "https://serpapi.com/search.json"
	ebayFindingBase = "https://svcs.ebay.com/services/search/FindingService/v1"

	// Shown when no image source produces anything usable.
	FallbackImageURL = "https://images.unsplash.com/photo-1517048676732-d65bc937f952?q=80&w=800&auto=format&fit=crop"
)

// Offer is the cheapest market listing found for a query.
type Offer struct {
	Price  float64 // dollars
	Title  string
	Link   string
	Source string // "Google Shopping" | "eBay" | "Heuristic"
}

// PartMeta identifies a part for market queries.
type PartMeta struct {
	Make  string
	Model string
	Year  int
	Part  string
	Name  string
}

func (m PartMeta) query(suffix string) string {
	part := m.Part
	if part == "" {
		part = m.Name
	}
	terms := make([]string, 0, 5)
	if m.Year != 0 {
		terms = append(terms, strconv.Itoa(m.Year))
	}
	for _, t := range []string{m.Make, m.Model, part, suffix} {
		if t != "" {
			terms = append(terms, t)
		}
	}
	return strings.Join(terms, " ")
}

type Client struct {
	SerpAPIKey  string
	EBayAppID   string
	SerpBaseURL string
	EBayBaseURL string
	HTTP        *http.Client
}

func NewClient(serpKey, ebayAppID string) *Client {
	return &Client{
		SerpAPIKey:  serpKey,
		EBayAppID:   ebayAppID,
		SerpBaseURL: serpAPIBase,
		EBayBaseURL: ebayFindingBase,
		HTTP:        &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sourcing: HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var nonPrice = regexp.MustCompile(`[^0-9.]`)

func parsePrice(s string) (float64, bool) {
	f, err := strconv.ParseFloat(nonPrice.ReplaceAllString(s, ""), 64)
	return f, err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (c *Client) cheapestFromSerpAPI(ctx context.Context, query string) *Offer {
	if c.SerpAPIKey == "" {
		return nil
	}
	q := url.Values{}
	q.Set("engine", "google_shopping")
	q.Set("q", query)
	q.Set("gl", "us")
	q.Set("api_key", c.SerpAPIKey)
	var body struct {
		ShoppingResults []struct {
			Price string `json:"price"`
			Title string `json:"title"`
			Link  string `json:"link"`
		} `json:"shopping_results"`
	}
	if err := c.getJSON(ctx, c.SerpBaseURL+"?"+q.Encode(), &body); err != nil {
		return nil
	}
	var best *Offer
	for _, it := range body.ShoppingResults {
		price, ok := parsePrice(it.Price)
		if !ok {
			continue
		}
		if best == nil || price < best.Price {
			best = &Offer{Price: price, Title: it.Title, Link: it.Link, Source: "Google Shopping"}
		}
	}
	return best
}

func (c *Client) cheapestFromEbay(ctx context.Context, query string) *Offer {
	if c.EBayAppID == "" {
		return nil
	}
	q := url.Values{}
	q.Set("OPERATION-NAME", "findItemsByKeywords")
	q.Set("SERVICE-VERSION", "1.0.0")
	q.Set("SECURITY-APPNAME", c.EBayAppID)
	q.Set("RESPONSE-DATA-FORMAT", "JSON")
	q.Set("keywords", query)
	q.Set("paginationInput.entriesPerPage", "10")
	var body struct {
		Response []struct {
			SearchResult []struct {
				Item []struct {
					Title         []string `json:"title"`
					ViewItemURL   []string `json:"viewItemURL"`
					SellingStatus []struct {
						CurrentPrice []struct {
							Value string `json:"__value__"`
						} `json:"currentPrice"`
					} `json:"sellingStatus"`
				} `json:"item"`
			} `json:"searchResult"`
		} `json:"findItemsByKeywordsResponse"`
	}
	if err := c.getJSON(ctx, c.EBayBaseURL+"?"+q.Encode(), &body); err != nil {
		return nil
	}
	var best *Offer
	if len(body.Response) == 0 || len(body.Response[0].SearchResult) == 0 {
		return nil
	}
	for _, it := range body.Response[0].SearchResult[0].Item {
		if len(it.SellingStatus) == 0 || len(it.SellingStatus[0].CurrentPrice) == 0 {
			continue
		}
		price, ok := parsePrice(it.SellingStatus[0].CurrentPrice[0].Value)
		if !ok {
			continue
		}
		if best == nil || price < best.Price {
			o := Offer{Price: price, Source: "eBay"}
			if len(it.Title) > 0 {
				o.Title = it.Title[0]
			}
			if len(it.ViewItemURL) > 0 {
				o.Link = it.ViewItemURL[0]
			}
			best = &o
		}
	}
	return best
}

var (
	reHeavyPart  = regexp.MustCompile(`(?i)rotor|radiator|bumper|compressor|converter`)
	reMediumPart = regexp.MustCompile(`(?i)alternator|shock|control|bearing|headlight`)
	reSmallPart  = regexp.MustCompile(`(?i)filter|plug|sensor`)
)

// heuristicBase prices a part class when no market source answers.
func heuristicBase(part string) float64 {
	switch {
	case reHeavyPart.MatchString(part):
		return 180
	case reMediumPart.MatchString(part):
		return 120
	case reSmallPart.MatchString(part):
		return 28
	default:
		return 75
	}
}

// CheapestOffer finds the lowest market price for a part, trying SerpAPI,
// then eBay, then the keyword heuristic. Never returns nil.
func (c *Client) CheapestOffer(ctx context.Context, meta PartMeta) *Offer {
	q := meta.query("OEM OR Aftermarket")
	if best := c.cheapestFromSerpAPI(ctx, q); best != nil {
		return best
	}
	if best := c.cheapestFromEbay(ctx, q); best != nil {
		return best
	}
	part := meta.Part
	if part == "" {
		part = meta.Name
	}
	title := strings.TrimSpace(meta.query(""))
	return &Offer{Price: heuristicBase(part), Title: title, Source: "Heuristic"}
}

// SupplierLink is CheapestOffer without the heuristic floor: nil when no
// live market source answered (dropship POs record the supplier as unknown).
func (c *Client) SupplierLink(ctx context.Context, meta PartMeta) *Offer {
	q := meta.query("OEM OR Aftermarket")
	if best := c.cheapestFromSerpAPI(ctx, q); best != nil {
		return best
	}
	return c.cheapestFromEbay(ctx, q)
}

// Markup75 converts a supplier dollar price to our listing price in cents.
func Markup75(price float64) int64 {
	return int64(math.Round(price * 1.75 * 100))
}

// AIListing builds the ephemeral AI-sourced product shown on the offers card.
type AIListing struct {
	domain.Part
	SourcePrice float64 `json:"source_price"`
	SourceLink  string  `json:"source_link,omitempty"`
	SourceFrom  string  `json:"source_from"`
}

func (c *Client) BuildAIListing(ctx context.Context, meta PartMeta) AIListing {
	offer := c.CheapestOffer(ctx, meta)
	name := strings.TrimSpace(meta.query("")) + " (AI-sourced)"
	part := meta.Part
	if part == "" {
		part = meta.Name
	}
	return AIListing{
		Part: domain.Part{
			ID:             "ai-" + uuid.NewString(),
			Name:           name,
			Make:           meta.Make,
			Model:          meta.Model,
			Year:           meta.Year,
			Category:       strings.ToLower(part),
			BasePriceCents: Markup75(offer.Price),
			Stock:          5,
			WeightLb:       2, DimLIn: 10, DimWIn: 8, DimHIn: 4,
		},
		SourcePrice: offer.Price,
		SourceLink:  offer.Link,
		SourceFrom:  offer.Source,
	}
}

// FindImageURL searches web imagery for a part: Google Images first, then
// Shopping thumbnails, then a generic fallback.
func (c *Client) FindImageURL(ctx context.Context, meta PartMeta) string {
	if c.SerpAPIKey != "" {
		q := url.Values{}
		q.Set("engine", "google_images")
		q.Set("q", meta.query(""))
		q.Set("hl", "en")
		q.Set("api_key", c.SerpAPIKey)
		var images struct {
			ImagesResults []struct {
				Original  string `json:"original"`
				Thumbnail string `json:"thumbnail"`
			} `json:"images_results"`
		}
		if err := c.getJSON(ctx, c.SerpBaseURL+"?"+q.Encode(), &images); err == nil {
			for _, hit := range images.ImagesResults {
				if strings.HasPrefix(hit.Original, "https://") {
					return hit.Original
				}
				if strings.HasPrefix(hit.Thumbnail, "https://") {
					return hit.Thumbnail
				}
			}
		}

		q.Set("engine", "google_shopping")
		q.Del("hl")
		q.Set("gl", "us")
		var shopping struct {
			ShoppingResults []struct {
				Thumbnail    string `json:"thumbnail"`
				ThumbnailURL string `json:"thumbnail_url"`
			} `json:"shopping_results"`
		}
		if err := c.getJSON(ctx, c.SerpBaseURL+"?"+q.Encode(), &shopping); err == nil {
			for _, hit := range shopping.ShoppingResults {
				if hit.Thumbnail != "" {
					return hit.Thumbnail
				}
				if hit.ThumbnailURL != "" {
					return hit.ThumbnailURL
				}
			}
		}
	}
	return FallbackImageURL
}
