package catalog

// The taxonomy is fixed at build time. Ids are stable across releases;
// a skill id is never reused for a different skill.
var categories = []Category{
	{
		ID:          "driving_logistics",
		Name:        "Driving & Logistics",
		Description: "Vehicle licences, delivery work and transport operations",
		Skills: []Skill{
			{ID: "hgv_class1", Name: "HGV Class 1 Licence", Category: "driving_logistics", Type: TypeLicense, Level: LevelCertified, Keywords: []string{"hgv", "c+e", "articulated", "truck"}, RelatedSkills: []string{"hgv_class2", "cpc_driver"}},
			{ID: "hgv_class2", Name: "HGV Class 2 Licence", Category: "driving_logistics", Type: TypeLicense, Level: LevelCertified, Keywords: []string{"hgv", "c", "rigid", "lorry"}, RelatedSkills: []string{"hgv_class1", "cpc_driver"}},
			{ID: "cpc_driver", Name: "Driver CPC", Category: "driving_logistics", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"cpc", "certificate of professional competence", "periodic training"}},
			{ID: "van_driving", Name: "Van Driving", Category: "driving_logistics", Type: TypeTechnical, Keywords: []string{"van", "delivery", "courier", "multidrop"}, RelatedSkills: []string{"route_planning"}},
			{ID: "forklift_counterbalance", Name: "Counterbalance Forklift", Category: "driving_logistics", Type: TypeLicense, Level: LevelCertified, Keywords: []string{"forklift", "flt", "counterbalance", "fork lift"}, RelatedSkills: []string{"forklift_reach"}},
			{ID: "forklift_reach", Name: "Reach Truck", Category: "driving_logistics", Type: TypeLicense, Level: LevelCertified, Keywords: []string{"forklift", "flt", "reach truck", "narrow aisle"}, RelatedSkills: []string{"forklift_counterbalance"}},
			{ID: "route_planning", Name: "Route Planning", Category: "driving_logistics", Type: TypeTechnical, Keywords: []string{"routes", "navigation", "sat nav", "scheduling"}},
			{ID: "tachograph", Name: "Tachograph Compliance", Category: "driving_logistics", Type: TypeTechnical, Keywords: []string{"tacho", "drivers hours", "working time"}},
			{ID: "adr_licence", Name: "ADR Licence", Category: "driving_logistics", Type: TypeLicense, Level: LevelCertified, Keywords: []string{"adr", "hazardous goods", "dangerous goods", "tanker"}},
			{ID: "moped_licence", Name: "Moped/Motorcycle Licence", Category: "driving_logistics", Type: TypeLicense, Keywords: []string{"moped", "scooter", "motorcycle", "cbt"}},
		},
	},
	{
		ID:          "construction",
		Name:        "Construction",
		Description: "Site work, groundwork and general building",
		Skills: []Skill{
			{ID: "cscs_card", Name: "CSCS Card", Category: "construction", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"cscs", "site card", "construction card"}},
			{ID: "general_labouring", Name: "General Labouring", Category: "construction", Type: TypeTechnical, Keywords: []string{"labourer", "site work", "ground work"}},
			{ID: "bricklaying", Name: "Bricklaying", Category: "construction", Type: TypeTechnical, Level: LevelAdvanced, Keywords: []string{"brickwork", "blockwork", "masonry"}, RelatedSkills: []string{"plastering"}},
			{ID: "plastering", Name: "Plastering", Category: "construction", Type: TypeTechnical, Keywords: []string{"plaster", "skimming", "rendering"}},
			{ID: "groundworks", Name: "Groundworks", Category: "construction", Type: TypeTechnical, Keywords: []string{"drainage", "kerbing", "excavation", "foundations"}},
			{ID: "scaffolding", Name: "Scaffolding", Category: "construction", Type: TypeTechnical, Level: LevelCertified, Keywords: []string{"scaffold", "cisrs", "working at height"}},
			{ID: "plant_operation", Name: "Plant Operation", Category: "construction", Type: TypeLicense, Level: LevelCertified, Keywords: []string{"cpcs", "digger", "excavator", "dumper", "plant"}},
			{ID: "site_safety", Name: "Site Health & Safety", Category: "construction", Type: TypeCertification, Keywords: []string{"sssts", "smsts", "risk assessment", "health and safety"}},
			{ID: "concrete_finishing", Name: "Concrete Finishing", Category: "construction", Type: TypeTechnical, Keywords: []string{"concrete", "screeding", "shuttering"}},
		},
	},
	{
		ID:          "trades_technical",
		Name:        "Skilled Trades",
		Description: "Qualified trade and technical maintenance work",
		Skills: []Skill{
			{ID: "electrical_installation", Name: "Electrical Installation", Category: "trades_technical", Type: TypeTechnical, Level: LevelCertified, Keywords: []string{"electrician", "wiring", "18th edition", "nvq"}, RelatedSkills: []string{"pat_testing"}},
			{ID: "plumbing", Name: "Plumbing", Category: "trades_technical", Type: TypeTechnical, Level: LevelAdvanced, Keywords: []string{"plumber", "pipework", "heating"}, RelatedSkills: []string{"gas_safe"}},
			{ID: "gas_safe", Name: "Gas Safe Registration", Category: "trades_technical", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"gas", "boiler", "gas safe", "corgi"}},
			{ID: "carpentry", Name: "Carpentry & Joinery", Category: "trades_technical", Type: TypeTechnical, Level: LevelAdvanced, Keywords: []string{"carpenter", "joiner", "woodwork", "first fix", "second fix"}},
			{ID: "welding", Name: "Welding", Category: "trades_technical", Type: TypeTechnical, Level: LevelCertified, Keywords: []string{"mig", "tig", "arc", "fabrication", "coded welder"}},
			{ID: "painting_decorating", Name: "Painting & Decorating", Category: "trades_technical", Type: TypeTechnical, Keywords: []string{"painter", "decorator", "wallpapering", "spraying"}},
			{ID: "pat_testing", Name: "PAT Testing", Category: "trades_technical", Type: TypeCertification, Keywords: []string{"portable appliance", "electrical testing"}},
			{ID: "tiling", Name: "Tiling", Category: "trades_technical", Type: TypeTechnical, Keywords: []string{"tiler", "wall tiling", "floor tiling"}},
			{ID: "vehicle_mechanics", Name: "Vehicle Mechanics", Category: "trades_technical", Type: TypeTechnical, Level: LevelAdvanced, Keywords: []string{"mechanic", "mot", "servicing", "diagnostics"}},
		},
	},
	{
		ID:          "warehouse_manufacturing",
		Name:        "Warehouse & Manufacturing",
		Description: "Picking, packing, assembly and production line work",
		Skills: []Skill{
			{ID: "order_picking", Name: "Order Picking", Category: "warehouse_manufacturing", Type: TypeTechnical, Keywords: []string{"picker", "packer", "picking", "rf scanner"}, RelatedSkills: []string{"stock_control"}},
			{ID: "stock_control", Name: "Stock Control", Category: "warehouse_manufacturing", Type: TypeTechnical, Keywords: []string{"inventory", "stock take", "goods in", "wms"}},
			{ID: "assembly_line", Name: "Assembly Line Work", Category: "warehouse_manufacturing", Type: TypeTechnical, Keywords: []string{"production line", "assembly", "factory"}},
			{ID: "machine_operation", Name: "Machine Operation", Category: "warehouse_manufacturing", Type: TypeTechnical, Keywords: []string{"machine operative", "cnc", "press", "production machinery"}},
			{ID: "quality_inspection", Name: "Quality Inspection", Category: "warehouse_manufacturing", Type: TypeTechnical, Keywords: []string{"qc", "quality control", "inspection", "defects"}},
			{ID: "manual_handling", Name: "Manual Handling", Category: "warehouse_manufacturing", Type: TypeCertification, Keywords: []string{"lifting", "heavy lifting", "manual handling certificate"}},
			{ID: "pallet_truck", Name: "Pallet Truck Operation", Category: "warehouse_manufacturing", Type: TypeTechnical, Keywords: []string{"llop", "ppt", "pump truck", "pallet"}},
			{ID: "loading_bay", Name: "Loading & Unloading", Category: "warehouse_manufacturing", Type: TypeTechnical, Keywords: []string{"loading", "unloading", "goods out", "despatch"}},
		},
	},
	{
		ID:          "hospitality_catering",
		Name:        "Hospitality & Catering",
		Description: "Kitchen, bar and front-of-house work",
		Skills: []Skill{
			{ID: "food_hygiene_l2", Name: "Food Hygiene Level 2", Category: "hospitality_catering", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"food safety", "haccp", "hygiene certificate"}},
			{ID: "commercial_cooking", Name: "Commercial Cooking", Category: "hospitality_catering", Type: TypeTechnical, Level: LevelAdvanced, Keywords: []string{"chef", "line cook", "kitchen", "food prep"}, RelatedSkills: []string{"food_hygiene_l2", "kitchen_portering"}},
			{ID: "kitchen_portering", Name: "Kitchen Portering", Category: "hospitality_catering", Type: TypeTechnical, Keywords: []string{"kp", "kitchen porter", "pot wash"}},
			{ID: "barista", Name: "Barista Skills", Category: "hospitality_catering", Type: TypeTechnical, Keywords: []string{"coffee", "espresso", "latte art"}},
			{ID: "bartending", Name: "Bartending", Category: "hospitality_catering", Type: TypeTechnical, Keywords: []string{"bar work", "cocktails", "cellar", "pulling pints"}, RelatedSkills: []string{"personal_licence"}},
			{ID: "personal_licence", Name: "Personal Licence (Alcohol)", Category: "hospitality_catering", Type: TypeLicense, Level: LevelCertified, Keywords: []string{"aplh", "licensing", "alcohol sales"}},
			{ID: "waiting_tables", Name: "Waiting & Table Service", Category: "hospitality_catering", Type: TypeTechnical, Keywords: []string{"waiter", "waitress", "silver service", "front of house"}},
			{ID: "housekeeping", Name: "Housekeeping", Category: "hospitality_catering", Type: TypeTechnical, Keywords: []string{"hotel cleaning", "room attendant", "chambermaid"}},
			{ID: "event_catering", Name: "Event Catering", Category: "hospitality_catering", Type: TypeTechnical, Keywords: []string{"events", "banqueting", "buffet", "functions"}},
		},
	},
	{
		ID:          "retail_sales",
		Name:        "Retail & Sales",
		Description: "Shop floor, checkout and customer sales work",
		Skills: []Skill{
			{ID: "till_operation", Name: "Till Operation", Category: "retail_sales", Type: TypeTechnical, Keywords: []string{"cashier", "checkout", "epos", "card payments"}},
			{ID: "customer_service", Name: "Customer Service", Category: "retail_sales", Type: TypeSoftSkill, Keywords: []string{"customers", "complaints", "service desk", "front line"}},
			{ID: "merchandising", Name: "Merchandising", Category: "retail_sales", Type: TypeTechnical, Keywords: []string{"displays", "planograms", "shelf stacking", "facing up"}},
			{ID: "stock_replenishment", Name: "Stock Replenishment", Category: "retail_sales", Type: TypeTechnical, Keywords: []string{"restocking", "shelf filling", "backroom", "deliveries"}},
			{ID: "upselling", Name: "Upselling & Cross-selling", Category: "retail_sales", Type: TypeSoftSkill, Keywords: []string{"sales targets", "add-on sales", "conversion"}},
			{ID: "cash_handling", Name: "Cash Handling", Category: "retail_sales", Type: TypeTechnical, Keywords: []string{"cashing up", "float", "banking", "reconciliation"}},
			{ID: "loss_prevention", Name: "Loss Prevention", Category: "retail_sales", Type: TypeTechnical, Keywords: []string{"security", "shrinkage", "theft awareness"}},
		},
	},
	{
		ID:          "healthcare_care",
		Name:        "Healthcare & Care",
		Description: "Care work, support work and clinical assistance",
		Skills: []Skill{
			{ID: "personal_care", Name: "Personal Care", Category: "healthcare_care", Type: TypeTechnical, Keywords: []string{"care assistant", "carer", "washing", "dressing", "daily living"}, RelatedSkills: []string{"moving_handling_people"}},
			{ID: "moving_handling_people", Name: "Moving & Handling of People", Category: "healthcare_care", Type: TypeCertification, Keywords: []string{"hoists", "transfers", "patient handling"}},
			{ID: "medication_administration", Name: "Medication Administration", Category: "healthcare_care", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"meds", "mar charts", "medication training"}},
			{ID: "first_aid", Name: "First Aid at Work", Category: "healthcare_care", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"first aider", "cpr", "defibrillator", "emergency"}},
			{ID: "dementia_care", Name: "Dementia Care", Category: "healthcare_care", Type: TypeTechnical, Keywords: []string{"alzheimers", "memory care", "challenging behaviour"}},
			{ID: "dbs_check", Name: "Enhanced DBS Check", Category: "healthcare_care", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"dbs", "background check", "safeguarding"}},
			{ID: "care_certificate", Name: "Care Certificate", Category: "healthcare_care", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"care standards", "induction standards", "nvq health"}},
			{ID: "safeguarding", Name: "Safeguarding Awareness", Category: "healthcare_care", Type: TypeCertification, Keywords: []string{"vulnerable adults", "child protection"}},
		},
	},
	{
		ID:          "cleaning_facilities",
		Name:        "Cleaning & Facilities",
		Description: "Commercial cleaning, grounds and facilities upkeep",
		Skills: []Skill{
			{ID: "commercial_cleaning", Name: "Commercial Cleaning", Category: "cleaning_facilities", Type: TypeTechnical, Keywords: []string{"cleaner", "office cleaning", "janitorial"}, RelatedSkills: []string{"coshh"}},
			{ID: "deep_cleaning", Name: "Deep Cleaning", Category: "cleaning_facilities", Type: TypeTechnical, Keywords: []string{"sanitisation", "disinfection", "end of tenancy"}},
			{ID: "coshh", Name: "COSHH Awareness", Category: "cleaning_facilities", Type: TypeCertification, Keywords: []string{"chemicals", "hazardous substances", "coshh certificate"}},
			{ID: "window_cleaning", Name: "Window Cleaning", Category: "cleaning_facilities", Type: TypeTechnical, Keywords: []string{"windows", "reach and wash", "squeegee"}},
			{ID: "floor_care", Name: "Floor Care & Buffing", Category: "cleaning_facilities", Type: TypeTechnical, Keywords: []string{"buffer", "scrubber dryer", "polishing", "carpet cleaning"}},
			{ID: "waste_management", Name: "Waste Management", Category: "cleaning_facilities", Type: TypeTechnical, Keywords: []string{"recycling", "waste disposal", "bins"}},
			{ID: "grounds_maintenance", Name: "Grounds Maintenance", Category: "cleaning_facilities", Type: TypeTechnical, Keywords: []string{"gardening", "mowing", "strimming", "landscaping"}},
		},
	},
	{
		ID:          "agriculture_outdoor",
		Name:        "Agriculture & Outdoor",
		Description: "Farm, seasonal and outdoor manual work",
		Skills: []Skill{
			{ID: "fruit_picking", Name: "Fruit & Vegetable Picking", Category: "agriculture_outdoor", Type: TypeTechnical, Keywords: []string{"harvest", "seasonal work", "picking", "packing house"}},
			{ID: "tractor_driving", Name: "Tractor Driving", Category: "agriculture_outdoor", Type: TypeLicense, Keywords: []string{"tractor", "agricultural vehicles", "telehandler"}},
			{ID: "livestock_handling", Name: "Livestock Handling", Category: "agriculture_outdoor", Type: TypeTechnical, Keywords: []string{"cattle", "sheep", "animal husbandry", "milking"}},
			{ID: "pesticide_spraying", Name: "Pesticide Application (PA1/PA6)", Category: "agriculture_outdoor", Type: TypeCertification, Level: LevelCertified, Keywords: []string{"spraying", "pa1", "pa6", "crop protection"}},
			{ID: "chainsaw_licence", Name: "Chainsaw Licence", Category: "agriculture_outdoor", Type: TypeLicense, Level: LevelCertified, Keywords: []string{"chainsaw", "felling", "forestry", "cs30"}},
			{ID: "fencing_hedging", Name: "Fencing & Hedging", Category: "agriculture_outdoor", Type: TypeTechnical, Keywords: []string{"fencing", "hedge laying", "post and rail"}},
		},
	},
	{
		ID:          "soft_skills",
		Name:        "Soft Skills",
		Description: "Transferable skills valued in any role",
		Skills: []Skill{
			{ID: "teamwork", Name: "Teamwork", Category: "soft_skills", Type: TypeSoftSkill, Keywords: []string{"team player", "collaboration", "working with others"}},
			{ID: "reliability", Name: "Reliability & Punctuality", Category: "soft_skills", Type: TypeSoftSkill, Keywords: []string{"dependable", "punctual", "attendance", "timekeeping"}},
			{ID: "communication", Name: "Communication", Category: "soft_skills", Type: TypeSoftSkill, Keywords: []string{"verbal", "listening", "clear english"}},
			{ID: "physical_stamina", Name: "Physical Stamina", Category: "soft_skills", Type: TypeSoftSkill, Keywords: []string{"fitness", "standing", "physical work", "outdoor work"}},
			{ID: "flexibility", Name: "Flexible Availability", Category: "soft_skills", Type: TypeSoftSkill, Keywords: []string{"shifts", "weekends", "nights", "overtime"}},
			{ID: "problem_solving", Name: "Problem Solving", Category: "soft_skills", Type: TypeSoftSkill, Keywords: []string{"initiative", "thinking on your feet", "troubleshooting"}},
			{ID: "attention_to_detail", Name: "Attention to Detail", Category: "soft_skills", Type: TypeSoftSkill, Keywords: []string{"accuracy", "thorough", "careful"}},
			{ID: "work_under_pressure", Name: "Working Under Pressure", Category: "soft_skills", Type: TypeSoftSkill, Keywords: []string{"busy environment", "fast paced", "deadlines"}},
		},
	},
}
