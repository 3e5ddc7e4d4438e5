package repositories

import "agrimach/internal/models"

// RegionSeed bundles one consistent slice of the national region coding.
type RegionSeed struct {
	Provinces []*models.Province
	Regencies []*models.Regency
	Districts []*models.District
	Villages  []*models.Village
}

// DefaultRegions covers the provinces the distributor operates in, with the
// deeper levels filled in for the main service areas. Ids follow the national
// administrative coding (province.regency.district.village).
func DefaultRegions() RegionSeed {
	return RegionSeed{
		Provinces: []*models.Province{
			{ID: "18", Name: "Lampung"},
			{ID: "32", Name: "Jawa Barat"},
			{ID: "33", Name: "Jawa Tengah"},
			{ID: "35", Name: "Jawa Timur"},
			{ID: "73", Name: "Sulawesi Selatan"},
		},
		Regencies: []*models.Regency{
			{ID: "35.21", ProvinceID: "35", Name: "Kab. Ngawi"},
			{ID: "35.22", ProvinceID: "35", Name: "Kab. Bojonegoro"},
			{ID: "33.14", ProvinceID: "33", Name: "Kab. Sragen"},
			{ID: "33.09", ProvinceID: "33", Name: "Kab. Boyolali"},
			{ID: "32.10", ProvinceID: "32", Name: "Kab. Majalengka"},
			{ID: "18.03", ProvinceID: "18", Name: "Kab. Lampung Selatan"},
			{ID: "73.22", ProvinceID: "73", Name: "Kab. Pinrang"},
		},
		Districts: []*models.District{
			{ID: "35.21.11", RegencyID: "35.21", Name: "Kec. Paron"},
			{ID: "35.21.12", RegencyID: "35.21", Name: "Kec. Kedunggalar"},
			{ID: "33.14.05", RegencyID: "33.14", Name: "Kec. Sidoharjo"},
			{ID: "32.10.07", RegencyID: "32.10", Name: "Kec. Jatiwangi"},
			{ID: "18.03.06", RegencyID: "18.03", Name: "Kec. Natar"},
			{ID: "73.22.03", RegencyID: "73.22", Name: "Kec. Watang Sawitto"},
		},
		Villages: []*models.Village{
			{ID: "35.21.11.2001", DistrictID: "35.21.11", Name: "Desa Gelung"},
			{ID: "35.21.11.2002", DistrictID: "35.21.11", Name: "Desa Tempuran"},
			{ID: "33.14.05.2003", DistrictID: "33.14.05", Name: "Desa Sribit"},
			{ID: "32.10.07.2001", DistrictID: "32.10.07", Name: "Desa Sutawangi"},
			{ID: "18.03.06.2005", DistrictID: "18.03.06", Name: "Desa Hajimena"},
			{ID: "73.22.03.2002", DistrictID: "73.22.03", Name: "Kel. Penrang"},
		},
	}
}
