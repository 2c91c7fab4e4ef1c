package service

import (
	"context"
	"net/url"
	"strconv"

	"vulearn/internal/api/v1/dto"
	"vulearn/internal/model"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// PageQuery selects one page of a moderation listing.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
}

func (q PageQuery) normalized() PageQuery {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	return q
}

func (q PageQuery) encode() string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v.Encode()
}

// fetchPage loads a paginated listing. A listing that yields nothing is an
// empty page at the requested position.
func fetchPage[D, M any](ctx context.Context, b *backend, path string, q PageQuery, conv func(D) M) (*model.Page[M], error) {
	q = q.normalized()
	p, err := fetchOne[dto.Page[D]](ctx, b, path+"?"+q.encode(), nil, authOrMock)
	if err != nil {
		return nil, err
	}
	page := &model.Page[M]{Items: []M{}, Page: q.Page, Limit: q.Limit}
	if p == nil {
		return page, nil
	}
	page.Total = p.Total
	if p.Page > 0 {
		page.Page = p.Page
	}
	if p.Limit > 0 {
		page.Limit = p.Limit
	}
	for _, item := range p.Data {
		page.Items = append(page.Items, conv(item))
	}
	return page, nil
}
