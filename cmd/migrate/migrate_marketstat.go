// cmd/migrate/migrate_marketstat.go
package main

import (
	"fmt"
	"log"
	"time"

	"MarketStat-Backend/internal/app/ds"
	"MarketStat-Backend/internal/app/dsn"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	fmt.Println("=== MarketStat Migration ===")

	// Подключение к базе данных
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	startTime := time.Now()

	// 1. Проверяем подключение
	fmt.Println("1. Checking database connection...")
	var result int
	db.Raw("SELECT 1").Scan(&result)
	if result == 1 {
		fmt.Println("   ✓ Database connection successful")
	} else {
		log.Fatal("   ✗ Database connection failed")
	}

	// 2. Создаем таблицы звездной схемы
	fmt.Println("2. Creating star schema tables...")
	err = db.AutoMigrate(
		&ds.DimLocation{},
		&ds.DimIndustryField{},
		&ds.DimJob{},
		&ds.DimEmployer{},
		&ds.DimEmployee{},
		&ds.DimDate{},
		&ds.FactSalary{},
		&ds.Users{},
	)
	if err != nil {
		log.Fatal("Failed to migrate tables:", err)
	}
	fmt.Println("   ✓ Tables created/verified")

	// 3. Создаем индексы измерений
	fmt.Println("3. Creating dimension indexes...")
	if err := ds.CreateDimensionIndexes(db); err != nil {
		log.Printf("   ⚠️  Dimension indexes: %v", err)
	} else {
		fmt.Println("   ✓ Dimension indexes created")
	}

	// 4. Создаем индексы таблицы фактов
	fmt.Println("4. Creating fact table indexes...")
	if err := ds.CreateFactIndexes(db); err != nil {
		log.Printf("   ⚠️  Fact indexes: %v", err)
	} else {
		fmt.Println("   ✓ Fact indexes created")
	}

	// 5. Сидируем демонстрационные данные (только в пустую базу)
	fmt.Println("5. Seeding demo data...")
	var factCount int64
	db.Model(&ds.FactSalary{}).Count(&factCount)
	if factCount > 0 {
		fmt.Printf("   Skipped: %d facts already present\n", factCount)
	} else {
		if err := seedDemoData(db); err != nil {
			log.Printf("   ⚠️  Seeding failed: %v", err)
		} else {
			fmt.Println("   ✓ Demo data seeded")
		}
	}

	// 6. Обновляем статистику
	fmt.Println("6. Updating statistics...")
	if err := db.Exec("ANALYZE fact_salaries").Error; err != nil {
		log.Printf("Warning analyzing table: %v", err)
	} else {
		fmt.Println("   ✓ Statistics updated")
	}

	totalTime := time.Since(startTime)

	fmt.Println("\n=== Migration Completed ===")
	fmt.Printf("Total time: %v\n", totalTime)

	fmt.Println("\n📊 Try the analytics endpoints:")
	fmt.Println("1. Summary statistics:")
	fmt.Println("   GET /api/analytics/summary?city_name=Москва&percentile=90")
	fmt.Println("2. Distribution histogram:")
	fmt.Println("   GET /api/analytics/distribution?industry_field_name=Информационные технологии")
	fmt.Println("3. Monthly time series:")
	fmt.Println("   GET /api/analytics/timeseries?granularity=month&periods=12")
	fmt.Println("4. Public role groups:")
	fmt.Println("   GET /api/analytics/public-roles?min_count=10")
}

// seedDemoData наполняет справочники и таблицу фактов небольшим демонстрационным набором
func seedDemoData(db *gorm.DB) error {
	locations := []ds.DimLocation{
		{CityName: "Москва", OblastName: "Московская область", DistrictName: "Центральный"},
		{CityName: "Санкт-Петербург", OblastName: "Ленинградская область", DistrictName: "Северо-Западный"},
		{CityName: "Казань", OblastName: "Республика Татарстан", DistrictName: "Приволжский"},
	}
	if err := db.Create(&locations).Error; err != nil {
		return err
	}

	industries := []ds.DimIndustryField{
		{IndustryFieldName: "Информационные технологии"},
		{IndustryFieldName: "Финансы"},
	}
	if err := db.Create(&industries).Error; err != nil {
		return err
	}

	jobs := []ds.DimJob{
		{JobRoleTitle: "Программист Go", StandardJobRoleTitle: "Backend-разработчик", HierarchyLevelName: "Middle", IndustryFieldID: industries[0].IndustryFieldID},
		{JobRoleTitle: "Старший разработчик", StandardJobRoleTitle: "Backend-разработчик", HierarchyLevelName: "Senior", IndustryFieldID: industries[0].IndustryFieldID},
		{JobRoleTitle: "Финансовый аналитик", StandardJobRoleTitle: "Аналитик", HierarchyLevelName: "Middle", IndustryFieldID: industries[1].IndustryFieldID},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}

	employers := []ds.DimEmployer{
		{EmployerName: "ООО Технологии", EmployerINN: "7701234567"},
		{EmployerName: "АО Финансовая группа", EmployerINN: "7809876543"},
	}
	if err := db.Create(&employers).Error; err != nil {
		return err
	}

	employees := []ds.DimEmployee{
		{Gender: "male", BirthYear: 1992, ExperienceYears: 6},
		{Gender: "female", BirthYear: 1988, ExperienceYears: 10},
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}

	// Календарь: первое число последних 12 месяцев
	now := time.Now()
	dates := make([]ds.DimDate, 0, 12)
	for i := 11; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		dates = append(dates, ds.DimDate{
			FullDate: d,
			Year:     d.Year(),
			Quarter:  (int(d.Month())-1)/3 + 1,
			Month:    int(d.Month()),
		})
	}
	if err := db.Create(&dates).Error; err != nil {
		return err
	}

	salaries := []int64{95000, 120000, 150000, 180000, 210000, 250000}
	facts := make([]ds.FactSalary, 0, len(dates)*len(jobs))
	for di, date := range dates {
		for ji, job := range jobs {
			amount := decimal.NewFromInt(salaries[(di+ji)%len(salaries)])
			facts = append(facts, ds.FactSalary{
				DateID:       date.DateID,
				JobID:        job.JobID,
				LocationID:   locations[(di+ji)%len(locations)].LocationID,
				EmployerID:   employers[ji%len(employers)].EmployerID,
				EmployeeID:   employees[di%len(employees)].EmployeeID,
				SalaryAmount: amount,
			})
		}
	}
	return db.Create(&facts).Error
}
