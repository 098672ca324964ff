// Package quizbank holds the static fallback multiple-choice questions
// used when the generation API is unavailable or returns nothing usable.
package quizbank

import (
	"math/rand"

	"github.com/acadport/papergen/internal/model"
)

var bank = map[string]map[string][]model.QuizQuestion{
	"AI&DS": {
		"Machine Learning": {
			{Question: "Which algorithm is commonly used for classification?", Options: []string{"Linear Regression", "K-Means", "Logistic Regression", "Apriori"}, Answer: "Logistic Regression"},
			{Question: "Overfitting means:", Options: []string{"Model performs poorly on training and test data", "Model performs well on training but poorly on test data", "Model performs poorly only on training data", "Model has too few parameters"}, Answer: "Model performs well on training but poorly on test data"},
			{Question: "Which is a supervised learning task?", Options: []string{"Clustering", "Dimensionality Reduction", "Classification", "Association Rule Mining"}, Answer: "Classification"},
			{Question: "What is used to evaluate classification models?", Options: []string{"Confusion Matrix", "Fourier Transform", "Z-Score", "Min-Max Scaling"}, Answer: "Confusion Matrix"},
			{Question: "Feature engineering is primarily used to:", Options: []string{"Increase internet speed", "Improve model input quality", "Reduce file size only", "Generate random labels"}, Answer: "Improve model input quality"},
		},
		"Deep Learning": {
			{Question: "CNN is primarily used for:", Options: []string{"Time-series forecasting only", "Image-related tasks", "Sorting data", "Database indexing"}, Answer: "Image-related tasks"},
			{Question: "LSTM is designed to handle:", Options: []string{"Only static images", "Sequential data with long-term dependencies", "Only binary files", "Only SQL queries"}, Answer: "Sequential data with long-term dependencies"},
			{Question: "Activation functions are used to:", Options: []string{"Make model non-linear", "Store data permanently", "Reduce network bandwidth", "Encrypt files"}, Answer: "Make model non-linear"},
			{Question: "Transfer learning helps by:", Options: []string{"Training from scratch always", "Using pre-trained models", "Removing all layers", "Ignoring existing weights"}, Answer: "Using pre-trained models"},
			{Question: "GAN consists of:", Options: []string{"Generator and Discriminator", "Encoder and Decoder only", "Client and Server", "Parser and Compiler"}, Answer: "Generator and Discriminator"},
		},
		"Big Data Analytics": {
			{Question: "Hadoop storage component is:", Options: []string{"HDFS", "JDBC", "REST", "SMTP"}, Answer: "HDFS"},
			{Question: "Spark is known for:", Options: []string{"In-memory processing", "Only disk-based processing", "Only C programming", "Image editing"}, Answer: "In-memory processing"},
			{Question: "MapReduce consists of:", Options: []string{"Map and Reduce phases", "Read and Write only", "Stack and Queue", "Encode and Decode"}, Answer: "Map and Reduce phases"},
			{Question: "Which database type is common in big data?", Options: []string{"NoSQL", "Only Excel", "Only flat files", "Only XML"}, Answer: "NoSQL"},
			{Question: "Stream processing handles:", Options: []string{"Only archived data", "Real-time data flows", "Only text files", "Only local backups"}, Answer: "Real-time data flows"},
		},
	},
	"IT": {
		"Web Development": {
			{Question: "Which language is used for page structure?", Options: []string{"CSS", "JavaScript", "HTML", "SQL"}, Answer: "HTML"},
			{Question: "CSS is mainly used for:", Options: []string{"Styling", "Database design", "Version control", "Authentication only"}, Answer: "Styling"},
			{Question: "REST APIs commonly use:", Options: []string{"HTTP methods", "Bluetooth", "Serial ports", "Assembly instructions"}, Answer: "HTTP methods"},
			{Question: "Node.js is primarily used for:", Options: []string{"Server-side JavaScript", "Photo editing", "Spreadsheet formulas", "Hardware debugging"}, Answer: "Server-side JavaScript"},
			{Question: "A common frontend framework is:", Options: []string{"React", "HDFS", "NumPy", "Dockerfile"}, Answer: "React"},
		},
		"Database Management Systems": {
			{Question: "SQL is used for:", Options: []string{"Querying relational databases", "Image compression", "Packet routing", "Audio recording"}, Answer: "Querying relational databases"},
			{Question: "Normalization helps to:", Options: []string{"Reduce redundancy", "Increase duplicate data", "Slow queries", "Remove indexes"}, Answer: "Reduce redundancy"},
			{Question: "ACID stands for:", Options: []string{"Atomicity, Consistency, Isolation, Durability", "Access, Control, Input, Data", "Array, Class, Interface, Data", "None"}, Answer: "Atomicity, Consistency, Isolation, Durability"},
			{Question: "NoSQL is best described as:", Options: []string{"Non-relational database family", "Only SQL joins", "A markup language", "A UI toolkit"}, Answer: "Non-relational database family"},
			{Question: "Indexing is used to:", Options: []string{"Speed up data retrieval", "Slow down reads", "Delete schema", "Encrypt passwords"}, Answer: "Speed up data retrieval"},
		},
	},
	"ECE": {
		"Digital Signal Processing": {
			{Question: "DFT stands for:", Options: []string{"Discrete Fourier Transform", "Direct Filter Technique", "Data Flow Transfer", "Digital Frame Timing"}, Answer: "Discrete Fourier Transform"},
			{Question: "A low-pass filter allows:", Options: []string{"Low frequencies", "High frequencies only", "No frequencies", "Random frequencies"}, Answer: "Low frequencies"},
			{Question: "Z-transform is used in:", Options: []string{"Discrete-time signal analysis", "Web styling", "Database indexing", "Cloud billing"}, Answer: "Discrete-time signal analysis"},
			{Question: "Sampling theorem is related to:", Options: []string{"Signal reconstruction", "Compiler optimization", "OS scheduling", "Packet switching"}, Answer: "Signal reconstruction"},
			{Question: "Convolution in DSP is used for:", Options: []string{"System output computation", "Password hashing only", "Image cropping only", "Memory allocation"}, Answer: "System output computation"},
		},
	},
	"CS": {
		"Operating Systems": {
			{Question: "Which scheduling algorithm is non-preemptive?", Options: []string{"Round Robin", "FCFS", "SRTF", "Priority Preemptive"}, Answer: "FCFS"},
			{Question: "A process in OS is:", Options: []string{"Program in execution", "A text editor", "A network cable", "A hardware chip"}, Answer: "Program in execution"},
			{Question: "Deadlock requires how many necessary conditions?", Options: []string{"2", "3", "4", "5"}, Answer: "4"},
			{Question: "Virtual memory helps to:", Options: []string{"Extend apparent RAM", "Increase monitor size", "Improve keyboard speed", "Remove files"}, Answer: "Extend apparent RAM"},
			{Question: "Semaphore is used for:", Options: []string{"Process synchronization", "Web page rendering", "Data compression", "Disk formatting"}, Answer: "Process synchronization"},
		},
	},
}

// Sample returns up to count questions for the department/course pair,
// sampled without replacement in random order. An unknown pair yields
// an empty slice.
func Sample(department, course string, count int) []model.QuizQuestion {
	entries := bank[department][course]
	if len(entries) == 0 {
		return nil
	}

	shuffled := make([]model.QuizQuestion, len(entries))
	copy(shuffled, entries)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count >= len(shuffled) {
		return shuffled
	}
	return shuffled[:count]
}
