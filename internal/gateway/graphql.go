package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/azaliaz/ruboni/internal/domain/models"
	"github.com/azaliaz/ruboni/internal/logger"
)

const lodgesQuery = `
query {
  lodges {
    data {
      id
      attributes {
        name
        location
        services
        region
        district
        createdAt
      }
    }
  }
}`

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// GraphQL runs query against the GraphQL endpoint and decodes "data" into out.
func (c *Client) GraphQL(ctx context.Context, query string, vars map[string]any, out any) error {
	log := logger.Get()
	const fallback = "GraphQL request failed"

	if vars == nil {
		vars = map[string]any{}
	}
	body, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	if err != nil {
		return &APIError{Message: fallback, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return &APIError{Message: fallback, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("graphql request failed")
		return &APIError{Message: fallback, Err: err}
	}
	defer resp.Body.Close()

	raw, err := readBody(resp.Body)
	if err != nil {
		return &APIError{Status: resp.StatusCode, Message: fallback, Err: err}
	}
	var gr graphqlResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return &APIError{Status: resp.StatusCode, Message: fallback, Err: fmt.Errorf("decode graphql response: %w", err)}
	}
	if len(gr.Errors) > 0 {
		msgs := make([]string, 0, len(gr.Errors))
		for _, e := range gr.Errors {
			msgs = append(msgs, e.Message)
		}
		log.Debug().Strs("errors", msgs).Msg("graphql errors")
		return &APIError{Status: resp.StatusCode, Name: "GraphQLError", Message: strings.Join(msgs, "; ")}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: fallback}
	}
	if out == nil {
		return nil
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return &APIError{Status: resp.StatusCode, Message: fallback, Err: ErrEmptyResponse}
	}
	return json.Unmarshal(gr.Data, out)
}

func (c *Client) LodgesGraphQL(ctx context.Context) ([]models.Lodge, error) {
	var resp struct {
		Lodges struct {
			Data json.RawMessage `json:"data"`
		} `json:"lodges"`
	}
	if err := c.GraphQL(ctx, lodgesQuery, nil, &resp); err != nil {
		return nil, err
	}
	wires, err := decodeList[lodgeWire](resp.Lodges.Data)
	if err != nil {
		return nil, &APIError{Message: "Failed to fetch lodges", Err: fmt.Errorf("decode lodges: %w", err)}
	}
	out := make([]models.Lodge, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.model())
	}
	return out, nil
}
