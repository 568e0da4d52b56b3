package service

import (
	"strings"

	"gigportal_backend/internal/dashboard/transport"
	"gigportal_backend/internal/gigs/draft"
	gigrepo "gigportal_backend/internal/gigs/repository"
	gigsvc "gigportal_backend/internal/gigs/service"
)

// EditPathPrefix is where the dashboard edits a listing by slug.
const EditPathPrefix = "/dashboard/services/edit/"

// FormFromRequest converts a posted form. An empty work type stays remote.
func FormFromRequest(req transport.ServiceFormRequest) draft.ServiceForm {
	wt, _ := draft.ParseWorkType(req.WorkType)
	return draft.ServiceForm{
		Title:           req.Title,
		CategoryID:      strings.TrimSpace(req.CategoryID),
		Description:     req.Description,
		Tags:            req.Tags,
		WorkType:        wt,
		LocationCity:    req.LocationCity,
		LocationCountry: req.LocationCountry,
		ServiceRadiusKm: req.ServiceRadiusKm,
		Package: draft.PackageForm{
			Title:         req.Package.Title,
			Description:   req.Package.Description,
			Price:         req.Package.Price,
			DeliveryDays:  req.Package.DeliveryDays,
			RevisionCount: req.Package.RevisionCount,
		},
	}
}

func ToFormResponse(ctrl *draft.Controller) transport.FormResponse {
	form := ctrl.Form()
	flat := ctrl.CategoryOptions()
	options := make([]transport.CategoryOption, 0, len(flat))
	for _, fc := range flat {
		options = append(options, transport.CategoryOption{
			ID:    fc.ID,
			Name:  fc.Name,
			Label: fc.Label(),
			Depth: fc.Depth,
		})
	}

	return transport.FormResponse{
		Locale:    ctrl.Locale(),
		Editing:   ctrl.Editing(),
		LoadState: string(ctrl.LoadState()),
		Form: transport.ServiceForm{
			Title:           form.Title,
			CategoryID:      form.CategoryID,
			Description:     form.Description,
			Tags:            form.Tags,
			WorkType:        string(form.WorkType),
			LocationCity:    form.LocationCity,
			LocationCountry: form.LocationCountry,
			ServiceRadiusKm: form.ServiceRadiusKm,
			Package: transport.PackageForm{
				Title:         form.Package.Title,
				Description:   form.Package.Description,
				Price:         form.Package.Price,
				DeliveryDays:  form.Package.DeliveryDays,
				RevisionCount: form.Package.RevisionCount,
			},
		},
		Categories: options,
	}
}

func ToSubmitResponse(res draft.Result) transport.SubmitResponse {
	resp := transport.SubmitResponse{
		Status:  string(res.Status),
		Message: res.Message,
	}
	if res.Status == draft.StatusSuccess {
		id := res.GigID
		resp.GigID = &id
		resp.Slug = res.Slug
		resp.RedirectTo = res.RedirectTo
		resp.RedirectAfterMs = res.RedirectAfter.Milliseconds()
	}
	return resp
}

func ToListingItems(rows []gigrepo.GigSummary) []transport.ListingItem {
	items := make([]transport.ListingItem, 0, len(rows))
	for _, row := range rows {
		item := transport.ListingItem{
			ID:           row.ID,
			Slug:         row.Slug,
			Title:        row.Title,
			Status:       row.Status,
			PackageCount: row.PackageCount,
			Currency:     row.Currency,
			EditPath:     EditPathPrefix + row.Slug,
			UpdatedAt:    row.UpdatedAt,
		}
		if row.StartingCents != nil {
			price := gigsvc.CentsToPrice(*row.StartingCents)
			item.StartingPrice = &price
		}
		items = append(items, item)
	}
	return items
}
