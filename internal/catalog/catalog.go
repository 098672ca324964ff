// Package catalog holds the static department and course catalog.
// Entries are process-wide constants; nothing here mutates after init.
package catalog

// Department groups a display name with its courses. Each course maps
// to a comma-separated syllabus topic string.
type Department struct {
	Name    string
	Courses map[string]string
}

var departments = map[string]Department{
	"AI&DS": {
		Name: "Artificial Intelligence and Data Science",
		Courses: map[string]string{
			"Machine Learning":            "Supervised Learning, Unsupervised Learning, Regression, Classification, Clustering, Feature Engineering, Model Selection",
			"Deep Learning":               "Neural Networks, CNNs, RNNs, LSTMs, GANs, Transfer Learning, Activation Functions",
			"Natural Language Processing": "Tokenization, Word Embeddings, Sentiment Analysis, Named Entity Recognition, Machine Translation",
			"Computer Vision":             "Image Processing, Object Detection, Image Segmentation, Face Recognition, Convolutional Networks",
			"Big Data Analytics":          "Hadoop, Spark, MapReduce, NoSQL Databases, Data Visualization, Stream Processing",
			"Data Structures and Algorithms": "Arrays, Linked Lists, Trees, Graphs, Sorting, Searching, Dynamic Programming",
		},
	},
	"IT": {
		Name: "Information Technology",
		Courses: map[string]string{
			"Web Development":             "HTML, CSS, JavaScript, React, Angular, Node.js, REST APIs, Web Security",
			"Database Management Systems": "SQL, NoSQL, Normalization, Indexing, Query Optimization, ACID Properties",
			"Software Engineering":        "SDLC, Design Patterns, UML, Agile, Version Control, Testing Strategies",
			"Cloud Computing":             "AWS, Azure, Google Cloud, Virtualization, Containers, Docker, Kubernetes",
			"Cybersecurity":               "Network Security, Cryptography, Penetration Testing, Firewalls, SSL/TLS, Authentication",
			"IT Infrastructure":           "Networking, Server Administration, System Design, Load Balancing, Disaster Recovery",
		},
	},
	"ECE": {
		Name: "Electronics and Communication Engineering",
		Courses: map[string]string{
			"Digital Signal Processing": "Fourier Transform, Filters, Z-Transform, DFT, Signal Analysis, Audio Processing",
			"Microprocessors":           "Assembly Language, 8085, 8086, Addressing Modes, Interrupts, Control Signals",
			"Communication Systems":     "Modulation, Demodulation, Frequency Spectrum, Bandwidth, Signal-to-Noise Ratio",
			"Embedded Systems":          "Microcontrollers, Arduino, Firmware Development, Real-time Systems, IoT Applications",
			"VLSI Design":               "Logic Design, Circuit Design, Layout, Simulation, Standard Cells, Physical Design",
			"Wireless Networks":         "Wi-Fi, Bluetooth, 4G/5G, Network Protocols, Antenna Design, Spectrum Management",
		},
	},
	"CS": {
		Name: "Computer Science",
		Courses: map[string]string{
			"Operating Systems":       "Process Management, Memory Management, File Systems, Scheduling, Synchronization",
			"Compiler Design":         "Lexical Analysis, Syntax Analysis, Code Generation, Optimization, Semantic Analysis",
			"Database Design":         "Relational Model, ER Diagrams, Query Languages, Transaction Management, Backup",
			"Network Protocols":       "TCP/IP, DNS, HTTP, HTTPS, BGP, OSPF, Network Layers",
			"Artificial Intelligence": "Search Algorithms, Game Theory, Problem Solving, Knowledge Representation",
			"Computer Graphics":       "2D/3D Graphics, Ray Tracing, Shading, Animation, Graphics Pipelines",
		},
	},
}

// codes lists department codes in a stable display order.
var codes = []string{"AI&DS", "IT", "ECE", "CS"}

// Codes returns all department codes in display order.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// Exists reports whether the department code is in the catalog.
func Exists(code string) bool {
	_, ok := departments[code]
	return ok
}

// Name returns the department display name, or the code itself when
// the department is unknown.
func Name(code string) string {
	if d, ok := departments[code]; ok {
		return d.Name
	}
	return code
}

// Courses returns the course→syllabus map for a department, or an
// empty map when the department is unknown.
func Courses(code string) map[string]string {
	d, ok := departments[code]
	if !ok {
		return map[string]string{}
	}
	return d.Courses
}

// HasCourse reports whether the course exists under the department.
func HasCourse(code, course string) bool {
	_, ok := departments[code].Courses[course]
	return ok
}

// Syllabus returns the syllabus topic string for a course, or the
// empty string when the department or course is unknown.
func Syllabus(code, course string) string {
	return departments[code].Courses[course]
}

// DefaultDepartment returns the user's department if it is in the
// catalog, otherwise the first department in display order.
func DefaultDepartment(userDepartment string) string {
	if Exists(userDepartment) {
		return userDepartment
	}
	return codes[0]
}
