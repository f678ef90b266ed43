package curriculum

// Topics are the choices offered by the intake form.
var Topics = []string{
	"Web Development",
	"Data Science",
	"Machine Learning",
	"Mobile App Development",
	"Cloud Computing",
	"Cybersecurity",
	"DevOps",
	"Artificial Intelligence",
	"Blockchain",
	"Game Development",
	"UI/UX Design",
	"Digital Marketing",
	"Product Management",
	"Database Administration",
	"Computer Networking",
	"Embedded Systems",
	"Computer Vision",
	"Natural Language Processing",
	"Software Testing",
	"Project Management",
}

func phase(label, description, duration string, concepts ...string) Node {
	node := Node{Label: label, Style: StylePhase, Description: description, Duration: duration}
	if len(concepts) > 0 {
		node.Children = []Node{group("Key Concepts", StyleConcepts, concepts...)}
	}
	return node
}

func group(label string, style NodeStyle, items ...string) Node {
	children := make([]Node, 0, len(items))
	for _, item := range items {
		children = append(children, Node{Label: item, Style: StyleItem})
	}
	return Node{Label: label, Style: style, Children: children}
}

var roadmapTable = map[string][]Node{
	"Web Development": {
		phase("HTML & CSS Fundamentals", "Semantic markup, the box model and responsive layouts.", "3-4 weeks",
			"Semantic HTML", "Flexbox and Grid", "Media queries"),
		phase("JavaScript Essentials", "Language core, the DOM and asynchronous programming.", "4-6 weeks",
			"ES6+ syntax", "DOM manipulation", "Promises and async/await"),
		phase("Frontend Frameworks", "Component-driven UIs with a modern framework.", "6-8 weeks",
			"React or Vue", "State management", "Client-side routing"),
		phase("Backend Development", "Servers, APIs and persistence.", "6-8 weeks",
			"REST APIs", "Authentication", "SQL and NoSQL databases"),
		phase("Deployment & DevOps", "Shipping and operating web applications.", "3-4 weeks",
			"CI/CD pipelines", "Containers", "Cloud hosting"),
	},
	"Data Science": {
		phase("Python for Data", "Language fundamentals plus the scientific stack.", "4-6 weeks",
			"NumPy", "pandas", "Jupyter notebooks"),
		phase("Statistics & Probability", "The math behind inference and experimentation.", "4-6 weeks",
			"Descriptive statistics", "Hypothesis testing", "Distributions"),
		phase("Data Wrangling & Visualization", "Cleaning, reshaping and telling stories with data.", "4-5 weeks",
			"Data cleaning", "Matplotlib and Seaborn", "Exploratory analysis"),
		phase("Machine Learning Basics", "Supervised and unsupervised modelling.", "6-8 weeks",
			"Regression", "Classification", "Model evaluation"),
		phase("Data Engineering & Communication", "Pipelines, SQL at scale and presenting findings.", "4-6 weeks",
			"SQL", "ETL pipelines", "Dashboards"),
	},
	"Machine Learning": {
		phase("Mathematics Foundations", "Linear algebra, calculus and probability for ML.", "4-6 weeks",
			"Vectors and matrices", "Gradients", "Probability theory"),
		phase("Classical Algorithms", "The core supervised and unsupervised toolbox.", "6-8 weeks",
			"Linear models", "Decision trees and ensembles", "Clustering"),
		phase("Deep Learning", "Neural networks and modern architectures.", "8-10 weeks",
			"Backpropagation", "CNNs", "Transformers"),
		phase("MLOps", "Training, serving and monitoring models in production.", "4-6 weeks",
			"Experiment tracking", "Model serving", "Drift monitoring"),
		phase("Research & Specialization", "Reading papers and going deep in one area.", "ongoing",
			"Paper reading", "Reproducing results", "Domain specialization"),
	},
}

var fallbackRoadmap = []Node{
	{Label: "Learn the fundamentals", Style: StylePhase},
	{Label: "Understand core concepts and terminology", Style: StylePhase},
	{Label: "Practice with guided exercises", Style: StylePhase},
	{Label: "Build small projects", Style: StylePhase},
	{Label: "Study advanced topics", Style: StylePhase},
	{Label: "Work on real-world applications", Style: StylePhase},
	{Label: "Build a portfolio and share your work", Style: StylePhase},
}

var projectTable = map[SkillLevel][]Project{
	Beginner: {
		{Name: "Personal Portfolio", Description: "Showcase what you learn as you go.", Complexity: ComplexityLow, EstimatedDuration: "1 week"},
		{Name: "To-Do List Application", Description: "Practice the basics of state and input handling.", Complexity: ComplexityLow, EstimatedDuration: "1 week"},
		{Name: "Calculator", Description: "Exercise core logic and edge cases.", Complexity: ComplexityLow, EstimatedDuration: "3-5 days"},
		{Name: "Weather Dashboard", Description: "Present structured data in a friendly way.", Complexity: ComplexityMedium, EstimatedDuration: "1-2 weeks"},
	},
	Intermediate: {
		{Name: "E-commerce Storefront", Description: "Catalog, cart and checkout flows.", Complexity: ComplexityMedium, EstimatedDuration: "3-4 weeks"},
		{Name: "Blog Platform", Description: "Authoring, comments and moderation.", Complexity: ComplexityMedium, EstimatedDuration: "2-3 weeks"},
		{Name: "Real-time Chat", Description: "Messaging with presence and history.", Complexity: ComplexityMedium, EstimatedDuration: "2-3 weeks"},
		{Name: "Task Management Tool", Description: "Boards, assignments and notifications.", Complexity: ComplexityHigh, EstimatedDuration: "3-4 weeks"},
	},
	Advanced: {
		{Name: "Distributed System", Description: "Design for partitions, retries and consistency.", Complexity: ComplexityHigh, EstimatedDuration: "6-8 weeks"},
		{Name: "Machine Learning Pipeline", Description: "From raw data to a served model.", Complexity: ComplexityHigh, EstimatedDuration: "6-8 weeks"},
		{Name: "Open Source Contribution", Description: "Land meaningful changes in a real project.", Complexity: ComplexityHigh, EstimatedDuration: "ongoing"},
		{Name: "SaaS Application", Description: "Multi-tenant product with billing and analytics.", Complexity: ComplexityHigh, EstimatedDuration: "8-12 weeks"},
	},
}
