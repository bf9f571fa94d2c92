package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse keeps the issued token plus every other field the backend
// sent, so callers get the full payload back.
type LoginResponse struct {
	Token  string
	Fields map[string]any
}

func (r *LoginResponse) UnmarshalJSON(b []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	r.Fields = fields
	r.Token, _ = fields["token"].(string)
	return nil
}

func (r LoginResponse) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["token"] = r.Token
	return json.Marshal(out)
}

// Login posts credentials to /auth/login.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResponse, error) {
	body, err := jsonBody(creds)
	if err != nil {
		return LoginResponse{}, err
	}
	var out LoginResponse
	err = c.do(ctx, request{
		op:          "login",
		method:      http.MethodPost,
		path:        "/auth/login",
		body:        body,
		contentType: "application/json",
	}, &out)
	return out, err
}
