package api

import (
	"github.com/retviz/server/internal/service"
)

// DatasetInfo contains information about a dataset for the API response.
type DatasetInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Citation string `json:"citation,omitempty"`
}

// DatasetRegistry holds chart services for all configured datasets.
type DatasetRegistry struct {
	services       map[string]*service.ChartService
	defaultDataset string
	datasetOrder   []string
	title          string
}

// NewDatasetRegistry creates a new dataset registry.
func NewDatasetRegistry(defaultDataset string, order []string, title string) *DatasetRegistry {
	return &DatasetRegistry{
		services:       make(map[string]*service.ChartService),
		defaultDataset: defaultDataset,
		datasetOrder:   order,
		title:          title,
	}
}

// Register adds a chart service for a dataset.
func (r *DatasetRegistry) Register(datasetID string, svc *service.ChartService) {
	r.services[datasetID] = svc
}

// Get returns the chart service for a dataset, or nil if not found.
func (r *DatasetRegistry) Get(datasetID string) *service.ChartService {
	return r.services[datasetID]
}

// Default returns the default dataset's chart service.
func (r *DatasetRegistry) Default() *service.ChartService {
	return r.services[r.defaultDataset]
}

// DefaultDatasetID returns the default dataset ID.
func (r *DatasetRegistry) DefaultDatasetID() string {
	return r.defaultDataset
}

// DatasetIDs returns all dataset IDs in config order.
func (r *DatasetRegistry) DatasetIDs() []string {
	return r.datasetOrder
}

// Title returns the configured site title.
func (r *DatasetRegistry) Title() string {
	if r.title != "" {
		return r.title
	}
	return "RetViz"
}

// Datasets returns dataset info for all registered datasets.
func (r *DatasetRegistry) Datasets() []DatasetInfo {
	infos := make([]DatasetInfo, 0, len(r.datasetOrder))
	for _, id := range r.datasetOrder {
		info := DatasetInfo{ID: id, Name: id}
		if svc := r.services[id]; svc != nil {
			p := svc.Profile()
			info.Name = p.Name
			info.Citation = p.Citation
		}
		infos = append(infos, info)
	}
	return infos
}
