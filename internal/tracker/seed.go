package tracker

// SeedSampleData registers the demo products so a fresh process has
// something to scan. Errors only on a duplicate id, i.e. when seeding runs
// twice against the same Tracker.
func (t *Tracker) SeedSampleData() error {
	samples := []RegisterInput{
		{ID: "PROD001", Name: "Vitamin C Supplement", Manufacturer: "ABC Pharma", Distributor: "XY2 Distributors", Retailer: "Retailer One", AssignedActor: "DeliveryGuy1", Lat: 12.9716, Lon: 77.5946},
		{ID: "PROD002", Name: "Organic Green Tea", Manufacturer: "GreenLeaf Co", Distributor: "DistX", Retailer: "HealthyStore", AssignedActor: "DeliveryGuy1", Lat: 12.9710, Lon: 77.5950},
		{ID: "PROD003", Name: "Fitness Band", Manufacturer: "FitLLC", Distributor: "LogiCorp", Retailer: "SportMart", AssignedActor: "DeliveryGuy2", Lat: 12.9720, Lon: 77.5936},
	}
	for _, in := range samples {
		if _, err := t.Register(in); err != nil {
			return err
		}
	}
	return nil
}
