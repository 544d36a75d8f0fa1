package handler

import "github.com/99minutos/shop-catalog/internal/core/domain"

func toUserResponse(u *domain.User) userResponse {
	return userResponse{Login: u.Login(), BasketItems: u.Basket().Len()}
}

func toProductResponse(p *domain.Product) productResponse {
	resp := productResponse{
		ID:     p.ID(),
		Name:   p.Name(),
		Price:  p.Price(),
		Rating: p.Rating(),
	}
	if id, ok := p.CategoryID(); ok {
		resp.CategoryID = &id
	}
	return resp
}

func toProductsResponse(ps []*domain.Product) []productResponse {
	out := make([]productResponse, len(ps))
	for i, p := range ps {
		out[i] = toProductResponse(p)
	}
	return out
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:       c.ID(),
		Name:     c.Name(),
		Products: toProductsResponse(c.Products()),
	}
}

func toBasketResponse(b *domain.Basket) basketResponse {
	return basketResponse{
		Items: toProductsResponse(b.Items()),
		Count: b.Len(),
		Total: b.Total(),
	}
}
