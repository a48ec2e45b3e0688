package candidate

// Mock returns the development fixture. Each record sits on or near a filter boundary;
// with the default filters five of the twelve pass.
func Mock() []*Candidate {
	return []*Candidate{
		{
			Name:                "张伟 (Wei Zhang)",
			Age:                 25,
			ExperienceYears:     2.0,
			Location:            "Melbourne",
			Nationality:         "Chinese",
			EducationBackground: []string{"China"},
			WorkBackground:      []string{"China", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/weizhang",
			CurrentPosition:     "Operation Manager",
			Skills:              []string{"Project Management", "Supply Chain", "Mandarin"},
			Languages:           []string{"Mandarin", "English"},
		},
		{
			Name:                "James Wilson",
			Age:                 28,
			ExperienceYears:     2.5,
			Location:            "Brisbane",
			Nationality:         "British",
			EducationBackground: []string{"UK"},
			WorkBackground:      []string{"UK", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/jameswilson",
			CurrentPosition:     "Business Development Manager",
			Skills:              []string{"Sales", "B2B", "CRM"},
			Languages:           []string{"English"},
		},
		// excluded location
		{
			Name:                "李明 (Ming Li)",
			Age:                 30,
			ExperienceYears:     2.0,
			Location:            "Sydney",
			Nationality:         "Chinese",
			EducationBackground: []string{"China", "UK"},
			WorkBackground:      []string{"Australia"},
			LinkedInURL:         "https://linkedin.com/in/mingli",
			CurrentPosition:     "Compliance Advisor",
			Skills:              []string{"Compliance", "Risk Management"},
			Languages:           []string{"Mandarin", "English"},
		},
		// above the age range
		{
			Name:                "Sarah Thompson",
			Age:                 45,
			ExperienceYears:     2.0,
			Location:            "Melbourne",
			Nationality:         "British",
			EducationBackground: []string{"UK"},
			WorkBackground:      []string{"UK", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/sarahthompson",
			CurrentPosition:     "Operation Manager",
			Skills:              []string{"Leadership", "Operations"},
			Languages:           []string{"English"},
		},
		// above the experience range
		{
			Name:                "王芳 (Fang Wang)",
			Age:                 32,
			ExperienceYears:     5.0,
			Location:            "Perth",
			Nationality:         "Chinese",
			EducationBackground: []string{"China"},
			WorkBackground:      []string{"China", "Singapore", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/fangwang",
			CurrentPosition:     "Business Development Manager",
			Skills:              []string{"Strategy", "Business Analysis"},
			Languages:           []string{"Mandarin", "English"},
		},
		// excluded background
		{
			Name:                "Raj Patel",
			Age:                 27,
			ExperienceYears:     2.0,
			Location:            "Melbourne",
			Nationality:         "Indian",
			EducationBackground: []string{"India"},
			WorkBackground:      []string{"India", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/rajpatel",
			CurrentPosition:     "Operation Manager",
			Skills:              []string{"Operations", "Team Management"},
			Languages:           []string{"Hindi", "English"},
		},
		// excluded background wins over the preferred UK entry
		{
			Name:                "Ahmed Hassan",
			Age:                 29,
			ExperienceYears:     2.5,
			Location:            "Perth",
			Nationality:         "Egyptian",
			EducationBackground: []string{"Egypt", "UK"},
			WorkBackground:      []string{"UAE", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/ahmedhassan",
			CurrentPosition:     "Compliance Advisor",
			Skills:              []string{"Compliance", "Financial Regulations"},
			Languages:           []string{"Arabic", "English"},
		},
		{
			Name:                "Emily Chen",
			Age:                 23,
			ExperienceYears:     1.5,
			Location:            "Perth",
			Nationality:         "Australian",
			EducationBackground: []string{"UK"},
			WorkBackground:      []string{"China", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/emilychen",
			CurrentPosition:     "Compliance Advisor",
			Skills:              []string{"Regulatory Compliance", "Policy Analysis"},
			Languages:           []string{"English", "Mandarin"},
		},
		// below the age range
		{
			Name:                "刘洋 (Yang Liu)",
			Age:                 19,
			ExperienceYears:     1.0,
			Location:            "Melbourne",
			Nationality:         "Chinese",
			EducationBackground: []string{"China"},
			WorkBackground:      []string{"China"},
			LinkedInURL:         "https://linkedin.com/in/yangliu",
			CurrentPosition:     "Business Development Manager",
			Skills:              []string{"Sales", "Marketing"},
			Languages:           []string{"Mandarin", "English"},
		},
		// upper experience bound
		{
			Name:                "陈静 (Jing Chen)",
			Age:                 35,
			ExperienceYears:     3.0,
			Location:            "Perth",
			Nationality:         "Chinese",
			EducationBackground: []string{"China", "Australia"},
			WorkBackground:      []string{"China", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/jingchen",
			CurrentPosition:     "Operation Manager",
			Skills:              []string{"Process Optimization", "Team Leadership"},
			Languages:           []string{"Mandarin", "English"},
		},
		// no preferred background
		{
			Name:                "John Smith",
			Age:                 30,
			ExperienceYears:     2.0,
			Location:            "Melbourne",
			Nationality:         "American",
			EducationBackground: []string{"USA"},
			WorkBackground:      []string{"USA", "Canada"},
			LinkedInURL:         "https://linkedin.com/in/johnsmith",
			CurrentPosition:     "Business Development Manager",
			Skills:              []string{"Sales Strategy", "Client Relations"},
			Languages:           []string{"English"},
		},
		// UK spelled as England / United Kingdom
		{
			Name:                "Sophie Williams",
			Age:                 27,
			ExperienceYears:     2.0,
			Location:            "Adelaide",
			Nationality:         "British",
			EducationBackground: []string{"England"},
			WorkBackground:      []string{"United Kingdom", "Australia"},
			LinkedInURL:         "https://linkedin.com/in/sophiewilliams",
			CurrentPosition:     "Compliance Advisor",
			Skills:              []string{"Legal Compliance", "Risk Assessment"},
			Languages:           []string{"English"},
		},
	}
}
