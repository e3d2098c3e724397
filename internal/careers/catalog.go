// File: internal/careers/catalog.go
package careers

import "github.com/gosimple/slug"

// The catalog is maintained in code for now; postings change a handful of
// times a year and go through review like any other content change.
var catalog = []JobPosting{
	{
		ID:          slug.Make("AI Data Labelling Associate-2"),
		Title:       "AI Data Labelling Associate-2",
		Department:  "Machine Learning, Data Annotation",
		Location:    "Uttara, Dhaka, Bangladesh",
		Type:        "Full-time",
		SalaryRange: "BDT 16,000 - 22,000",
		Remote:      false,
		Deadline:    "2024-07-31",
		Description: "Bridging human excellence and machine efficiency, our client provides high-quality training data at scale through powerful annotation technology and a dedicated service team. An end-to-end solution for machine learning needs, it empowers AI companies to achieve accelerated, scalable results—without sacrificing precision or quality.",
		Responsibilities: []string{
			"Analyze and review team members' work output against guidelines/standards and provide feedback",
			"Identify team members' strengths and weaknesses. Provide feedback to Delivery Leads on identified areas that individual members of the team need to improve on for coaching",
			"Liaise with Delivery Leads to ensure that feedback and the identified quality gaps are addressed with the individual/team members",
			"Manage a team of up to 10 annotators/ delivery assistant",
			"Identify project-specific challenges and communicate them with the Delivery Lead and Project Management team accordingly",
			"Collaborate with the management team to ensure that best quality assurance and annotation standards are revised and updated where need be",
			"Ensure real-time tracking of Project Charter",
			"Provide feedback and recommendations on recurring and widespread gaps that should be addressed through training",
			"Keep an up-to-date record of team members' quality performance for use in performance reviews",
			"Participate in team briefings to understand the project guidelines and requirements",
			"Prepare the Quality Assurance process as per the project requirements",
			"Assist Delivery Lead in preparing reports for projects (if needed)",
			"Ensure all team members meet their quality expectations and deadlines",
			"Perform ad-hoc daily tasks when necessary. Tasks include annotations, training, onboarding new annotators, maintaining daily progress reports, etc.",
		},
		Required: []string{
			"Graduation Degree from any reputed university preferably in Computer Science or Business",
			"Excellent communication skills in English, both verbal and written",
			"Proficiency in Microsoft Office and Google Ecosystem",
			"Preferable 0-1 year of experience working with any BPO company. Freshers are also encouraged to apply",
			"Experience in working with a start-up will be an advantage",
		},
		Preferred: []string{
			"Highly organized and able to multitask",
			"Strong attention to detail and problem-solving skills",
			"Able to work independently and as part of a team",
			"Ability to lead a team",
		},
		Benefits: []string{
			"Yearly Salary Review",
			"Festival Bonus",
			"Working Days: Sunday – Friday (Sunday is Work from Home)",
			"Working Hours: 9:30 am – 6:30 pm",
		},
	},
	{
		ID:          "sr-executive-recruitment",
		Title:       "Sr. Executive - Recruitment and Employer Branding",
		Department:  "Machine Learning, Data Annotation",
		Location:    "Dhaka, Bangladesh",
		Type:        "Full-time",
		SalaryRange: "Negotiable based on experience",
		Remote:      false,
		Deadline:    "2025-08-31",
		Description: "Our client combines human expertise with machine efficiency to deliver high-quality annotated data at scale. They help AI companies achieve faster, scalable results without compromising precision or quality. Their clients range from ambitious startups and academic institutions to Fortune 500 companies, spanning industries like autonomous driving, retail, security, and geospatial. They proudly support a global network of customers across all continents. Despite our growth, they remain committed to transparency, fair pricing, personalized service, and delivering exceptional results.",
		Responsibilities: []string{
			"Talent Acquisition Strategy: Develop and implement strategic hiring plans for both local and international markets based on current and future needs.",
			"Full Cycle Recruitment: Manage the recruitment process, from job requisition to onboarding for technical and non-technical roles.",
			"Global Hiring: Source, engage and hire talent from global markets while understanding regional labor laws, market trends and sourcing best practices.",
			"Employer Branding: Partner with the marketing and leadership teams to promote clients' AI as an employer of choice in key markets.",
			"Stakeholder Management: Collaborate with hiring managers and leadership across departments to deeply understand hiring requirements and provide guidance on talent market availability.",
			"ATS & Data Management: Maintain accurate records and reports in Applicant Tracking System (ATS); analyze metrics to improve recruitment performance.",
			"Talent Pipeline Building: Proactively build and maintain a pipeline of high-quality candidates for critical and frequently hired roles.",
			"Diversity & Inclusion: Champion diversity hiring and inclusive recruitment practices.",
			"Vendor and platform management: Manage relationships with third-party recruiters, job boards, and global talent platforms.",
		},
		Required: []string{
			"2-4 years of proven experience in full-cycle recruiting, especially in Tech/AI/Outsourcing Sectors.",
			"Experience in hiring across local and international markets.",
			"Strong knowledge of global sourcing strategies and tools (LinkedIn Recruiter, Boolean search, global job boards, etc.)",
			"Exceptional communication, negotiation, and stakeholder management skills.",
			"Hands-on experience with Applicant Tracking System (e.g,. Greenhouse, Lever, or equivalent)",
			"Ability to manage multiple priorities in a fast-paced environment.",
			"Passion for building diverse, high-performing teams.",
			"Bachelor's degree in HR, Business, or related field (Master's is a plus)",
		},
		Preferred: []string{
			"Experience in hiring for AI/ML, data annotation, or tech-driven service companies.",
			"Prior exposure to working in start-ups or high-growth environments.",
		},
		Benefits: []string{
			"Competitive salary and festival bonuses to reward your hard work and achievements.",
			"The chance to collaborate with a dynamic team, working with clients across diverse industries and continents.",
			"Opportunities to make a tangible impact on our growth and contribute to projects that are shaping the future of AI.",
			"A fast-paced, high-energy environment where innovation, ambition, and teamwork thrive.",
			"Education and training assistance stipends to support your professional development.",
			"Clear growth opportunities to advance your career within the company.",
		},
	},
}
