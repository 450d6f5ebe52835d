// internal/app/repository/location.go
package repository

import (
	"context"

	"MarketStat-Backend/internal/app/ds"

	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// GetLocations возвращает список локаций с опциональным поиском по городу
func (r *LocationRepository) GetLocations(cityName string) ([]ds.DimLocation, error) {
	query := r.db.Model(&ds.DimLocation{})
	if cityName != "" {
		query = query.Where("LOWER(city_name) LIKE LOWER(?)", "%"+cityName+"%")
	}

	var locations []ds.DimLocation
	err := query.Order("location_id ASC").Find(&locations).Error
	return locations, err
}

// GetLocation возвращает локацию по ID
func (r *LocationRepository) GetLocation(id int) (*ds.DimLocation, error) {
	var location ds.DimLocation
	if err := r.db.First(&location, "location_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

// CreateLocation создает локацию, ID выдает последовательность БД
func (r *LocationRepository) CreateLocation(location *ds.DimLocation) error {
	return r.db.Create(location).Error
}

// UpdateLocation обновляет локацию
func (r *LocationRepository) UpdateLocation(location *ds.DimLocation) error {
	result := r.db.Model(&ds.DimLocation{}).
		Where("location_id = ?", location.LocationID).
		Updates(map[string]interface{}{
			"city_name":     location.CityName,
			"oblast_name":   location.OblastName,
			"district_name": location.DistrictName,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteLocation удаляет локацию
func (r *LocationRepository) DeleteLocation(id int) error {
	result := r.db.Delete(&ds.DimLocation{}, "location_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetLocationIDsByFilter ищет ID локаций по точному совпадению комбинации
// названий. Пустые строки не участвуют в фильтре. Реализует
// analytics.LocationIDResolver
func (r *LocationRepository) GetLocationIDsByFilter(ctx context.Context, districtName, oblastName, cityName string) ([]int, error) {
	query := r.db.WithContext(ctx).Model(&ds.DimLocation{})

	if districtName != "" {
		query = query.Where("district_name = ?", districtName)
	}
	if oblastName != "" {
		query = query.Where("oblast_name = ?", oblastName)
	}
	if cityName != "" {
		query = query.Where("city_name = ?", cityName)
	}

	var ids []int
	err := query.Pluck("location_id", &ids).Error
	return ids, err
}
