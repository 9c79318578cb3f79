package levels

import "github.com/verte-zerg/typemaster/internal/model"

var catalog = []model.Level{
	{
		ID:               1,
		Name:             "Home Row Basics",
		Description:      "Learn the foundation keys: ASDF JKL;",
		Difficulty:       model.Beginner,
		RequiredWPM:      15,
		RequiredAccuracy: 85,
		Content:          "asdf jkl; asdf jkl; fdsa ;lkj fdsa ;lkj aaa sss ddd fff jjj kkk lll ;;; asdf jkl;",
		Tips: []string{
			"Keep your fingers on the home row",
			"Use proper finger placement",
			"Don't look at the keyboard",
		},
	},
	{
		ID:               2,
		Name:             "Home Row Words",
		Description:      "Form simple words using home row keys",
		Difficulty:       model.Beginner,
		RequiredWPM:      18,
		RequiredAccuracy: 87,
		Content:          "ask dad sad lad fall all ask dad sad lad fall all flask flask flask ask dad sad lad",
		Tips: []string{
			"Focus on accuracy over speed",
			"Keep your wrists straight",
			"Use all fingers, not just index fingers",
		},
	},
	{
		ID:               3,
		Name:             "Top Row Introduction",
		Description:      "Add Q W E R T Y U I O P to your skills",
		Difficulty:       model.Beginner,
		RequiredWPM:      20,
		RequiredAccuracy: 85,
		Content:          "qwer tyui op qwer tyui op quit quit quit port port port wipe wipe wipe type type type",
		Tips: []string{
			"Reach up from home row",
			"Return fingers to home position",
			"Practice the reach motion",
		},
	},
	{
		ID:               4,
		Name:             "Top Row Words",
		Description:      "Create words combining home and top rows",
		Difficulty:       model.Beginner,
		RequiredWPM:      22,
		RequiredAccuracy: 87,
		Content:          "quit port wipe type rope tire pure quote quite write power tower water paper",
		Tips: []string{
			"Combine movements smoothly",
			"Maintain rhythm",
			"Don't rush the difficult reaches",
		},
	},
	{
		ID:               5,
		Name:             "Bottom Row Basics",
		Description:      "Master Z X C V B N M keys",
		Difficulty:       model.Beginner,
		RequiredWPM:      20,
		RequiredAccuracy: 85,
		Content:          "zxcv bnm zxcv bnm zxcv bnm maze maze maze cave cave cave venom venom venom",
		Tips: []string{
			"Reach down from home row",
			"Use proper finger assignments",
			"Keep other fingers on home row",
		},
	},
	{
		ID:               6,
		Name:             "Bottom Row Words",
		Description:      "Form words using all three rows",
		Difficulty:       model.Beginner,
		RequiredWPM:      25,
		RequiredAccuracy: 87,
		Content:          "maze cave venom zebra boxer maven civic maxim zinc bronze carbon",
		Tips: []string{
			"Coordinate all three rows",
			"Maintain steady rhythm",
			"Focus on finger independence",
		},
	},
	{
		ID:               7,
		Name:             "Capital Letters",
		Description:      "Learn to use shift keys properly",
		Difficulty:       model.Beginner,
		RequiredWPM:      23,
		RequiredAccuracy: 85,
		Content:          "The Quick Brown Fox Jumps Over The Lazy Dog. The Quick Brown Fox Jumps Over The Lazy Dog.",
		Tips: []string{
			"Use opposite shift key",
			"Don't lift other fingers",
			"Practice shift combinations",
		},
	},
	{
		ID:               8,
		Name:             "Common Words",
		Description:      "Practice frequently used English words",
		Difficulty:       model.Beginner,
		RequiredWPM:      27,
		RequiredAccuracy: 88,
		Content:          "the and for are but not you all can had her was one our out day get has him his how its may new now old see two who boy did man men get",
		Tips: []string{
			"Build muscle memory for common words",
			"Focus on word patterns",
			"Increase typing rhythm",
		},
	},
	{
		ID:               9,
		Name:             "Short Sentences",
		Description:      "Type complete sentences with proper spacing",
		Difficulty:       model.Beginner,
		RequiredWPM:      25,
		RequiredAccuracy: 88,
		Content:          "The cat sat on the mat. Dogs run fast in the park. Birds fly high in the blue sky. Fish swim deep in the ocean.",
		Tips: []string{
			"Use thumb for space bar",
			"Maintain consistent spacing",
			"Practice sentence flow",
		},
	},
	{
		ID:               10,
		Name:             "Beginner Assessment",
		Description:      "Test your basic typing skills",
		Difficulty:       model.Beginner,
		RequiredWPM:      30,
		RequiredAccuracy: 90,
		Content:          "Learning to type is an important skill in today's digital world. With practice and patience, anyone can master the keyboard and type efficiently without looking at the keys.",
		Tips: []string{
			"Combine all learned skills",
			"Focus on consistency",
			"Prepare for intermediate levels",
		},
	},
	{
		ID:               11,
		Name:             "Number Row Basics",
		Description:      "Learn to type numbers 1-0",
		Difficulty:       model.Intermediate,
		RequiredWPM:      28,
		RequiredAccuracy: 88,
		Content:          "1234567890 1234567890 123 456 789 012 345 678 901 234 567 890 123 456 789",
		Tips: []string{
			"Use proper finger for each number",
			"Don't look at number row",
			"Practice number combinations",
		},
	},
	{
		ID:               12,
		Name:             "Numbers and Letters",
		Description:      "Mix numbers with letters in typing",
		Difficulty:       model.Intermediate,
		RequiredWPM:      30,
		RequiredAccuracy: 88,
		Content:          "room 123 page 456 line 789 code 012 year 2024 age 25 phone 555 address 123 main street",
		Tips: []string{
			"Smooth transitions between numbers and letters",
			"Maintain typing rhythm",
			"Practice common number-letter patterns",
		},
	},
	{
		ID:               13,
		Name:             "Basic Punctuation",
		Description:      "Add periods, commas, and question marks",
		Difficulty:       model.Intermediate,
		RequiredWPM:      28,
		RequiredAccuracy: 87,
		Content:          "Hello, how are you? I am fine, thank you. What time is it? It is 3:30 PM. Are you ready? Yes, I am ready.",
		Tips: []string{
			"Use proper finger for punctuation",
			"Don't pause before punctuation",
			"Practice punctuation patterns",
		},
	},
	{
		ID:               14,
		Name:             "Apostrophes and Quotes",
		Description:      "Master contractions and quotations",
		Difficulty:       model.Intermediate,
		RequiredWPM:      30,
		RequiredAccuracy: 87,
		Content:          "I can't believe it's already time to go. She said, \"I'll be there soon.\" Don't worry, we won't be late.",
		Tips: []string{
			"Practice apostrophe placement",
			"Use proper quote finger",
			"Master contraction typing",
		},
	},
	{
		ID:               15,
		Name:             "Longer Paragraphs",
		Description:      "Type extended text passages",
		Difficulty:       model.Intermediate,
		RequiredWPM:      32,
		RequiredAccuracy: 88,
		Content:          "Technology has revolutionized the way we communicate and work. From smartphones to laptops, digital devices have become essential tools in our daily lives. The ability to type quickly and accurately is now more important than ever before.",
		Tips: []string{
			"Maintain consistency over longer text",
			"Focus on endurance",
			"Keep steady rhythm throughout",
		},
	},
	{
		ID:               16,
		Name:             "Mixed Case Text",
		Description:      "Handle varied capitalization patterns",
		Difficulty:       model.Intermediate,
		RequiredWPM:      30,
		RequiredAccuracy: 87,
		Content:          "JavaScript HTML CSS Python Java C++ SQL PHP Ruby Swift Kotlin React Angular Vue Node Express MongoDB MySQL",
		Tips: []string{
			"Quick shift key usage",
			"Maintain speed with capitals",
			"Practice programming terms",
		},
	},
	{
		ID:               17,
		Name:             "Email Addresses",
		Description:      "Type common email and web formats",
		Difficulty:       model.Intermediate,
		RequiredWPM:      28,
		RequiredAccuracy: 87,
		Content:          "john.doe@email.com mary_smith@company.org info@website.net support@service.com admin@domain.co.uk",
		Tips: []string{
			"Practice @ symbol placement",
			"Master dot and underscore",
			"Build email typing rhythm",
		},
	},
	{
		ID:               18,
		Name:             "Web Addresses",
		Description:      "Type URLs and web addresses",
		Difficulty:       model.Intermediate,
		RequiredWPM:      30,
		RequiredAccuracy: 87,
		Content:          "https://www.example.com http://subdomain.site.org www.company.net/about https://blog.website.com/posts",
		Tips: []string{
			"Practice forward slash",
			"Master colon placement",
			"Build URL typing patterns",
		},
	},
	{
		ID:               19,
		Name:             "Business Writing",
		Description:      "Professional communication text",
		Difficulty:       model.Intermediate,
		RequiredWPM:      33,
		RequiredAccuracy: 89,
		Content:          "Dear Mr. Johnson, Thank you for your inquiry regarding our services. We would be pleased to schedule a meeting at your convenience. Please let us know your availability. Best regards, Sarah Wilson",
		Tips: []string{
			"Professional writing rhythm",
			"Proper business formatting",
			"Maintain formal tone speed",
		},
	},
	{
		ID:               20,
		Name:             "Technical Terms",
		Description:      "IT and technical vocabulary",
		Difficulty:       model.Intermediate,
		RequiredWPM:      31,
		RequiredAccuracy: 87,
		Content:          "database server network protocol algorithm encryption authentication authorization firewall bandwidth latency throughput",
		Tips: []string{
			"Technical term accuracy",
			"Build tech vocabulary speed",
			"Practice complex terms",
		},
	},
	{
		ID:               21,
		Name:             "Data Entry Practice",
		Description:      "Numbers, codes, and structured data",
		Difficulty:       model.Intermediate,
		RequiredWPM:      32,
		RequiredAccuracy: 90,
		Content:          "ID: 12345 Name: John Smith Phone: 555-0123 Email: john@email.com Address: 123 Main St, City, ST 12345",
		Tips: []string{
			"Accurate data entry",
			"Consistent formatting",
			"Error-free number typing",
		},
	},
	{
		ID:               22,
		Name:             "Scientific Text",
		Description:      "Scientific and academic writing",
		Difficulty:       model.Intermediate,
		RequiredWPM:      30,
		RequiredAccuracy: 88,
		Content:          "The hypothesis was tested through controlled experiments. Results indicated a significant correlation between variables. Further research is needed to validate these findings.",
		Tips: []string{
			"Academic vocabulary",
			"Scientific term accuracy",
			"Formal writing speed",
		},
	},
	{
		ID:               23,
		Name:             "Creative Writing",
		Description:      "Descriptive and narrative text",
		Difficulty:       model.Intermediate,
		RequiredWPM:      33,
		RequiredAccuracy: 88,
		Content:          "The golden sunset painted the sky in brilliant hues of orange and pink. Gentle waves lapped against the shore as seagulls danced overhead in the warm evening breeze.",
		Tips: []string{
			"Descriptive language flow",
			"Creative expression speed",
			"Narrative rhythm",
		},
	},
	{
		ID:               24,
		Name:             "News Article Style",
		Description:      "Journalistic writing patterns",
		Difficulty:       model.Intermediate,
		RequiredWPM:      34,
		RequiredAccuracy: 89,
		Content:          "Local authorities reported that the new community center will open next month. The facility will include a gymnasium, library, and meeting rooms for public use.",
		Tips: []string{
			"News writing pace",
			"Factual information speed",
			"Journalistic style",
		},
	},
	{
		ID:               25,
		Name:             "Intermediate Assessment",
		Description:      "Comprehensive intermediate skills test",
		Difficulty:       model.Intermediate,
		RequiredWPM:      35,
		RequiredAccuracy: 90,
		Content:          "Congratulations on reaching the intermediate level! You've developed solid typing fundamentals and can now handle various text types. The advanced levels will challenge you with complex formatting, special characters, and higher speed requirements. Keep practicing to maintain your progress.",
		Tips: []string{
			"Demonstrate all intermediate skills",
			"Prepare for advanced challenges",
			"Maintain consistent performance",
		},
	},
	{
		ID:               26,
		Name:             "Special Characters",
		Description:      "Master symbols and special characters",
		Difficulty:       model.Advanced,
		RequiredWPM:      33,
		RequiredAccuracy: 87,
		Content:          "!@#$%^&*()_+-=[]{}|;':\",./<>? !@#$%^&*()_+-=[]{}|;':\",./<>? special characters practice",
		Tips: []string{
			"Learn symbol finger assignments",
			"Practice shift combinations",
			"Build symbol muscle memory",
		},
	},
	{
		ID:               27,
		Name:             "Programming Code",
		Description:      "Type programming syntax and code",
		Difficulty:       model.Advanced,
		RequiredWPM:      30,
		RequiredAccuracy: 90,
		Content:          "function calculateTotal(price, tax) { return price * (1 + tax); } const result = calculateTotal(100, 0.08);",
		Tips: []string{
			"Code syntax accuracy",
			"Programming punctuation",
			"Bracket and brace placement",
		},
	},
	{
		ID:               28,
		Name:             "Mathematical Expressions",
		Description:      "Type mathematical formulas and equations",
		Difficulty:       model.Advanced,
		RequiredWPM:      28,
		RequiredAccuracy: 92,
		Content:          "y = mx + b; a² + b² = c²; f(x) = 2x³ - 5x² + 3x - 7; ∫(2x + 1)dx = x² + x + C",
		Tips: []string{
			"Mathematical symbol accuracy",
			"Formula structure",
			"Scientific notation",
		},
	},
	{
		ID:               29,
		Name:             "Foreign Phrases",
		Description:      "Common foreign words and phrases",
		Difficulty:       model.Advanced,
		RequiredWPM:      32,
		RequiredAccuracy: 88,
		Content:          "café résumé naïve fiancé piñata jalapeño über schadenfreude karaoke tsunami sushi anime manga",
		Tips: []string{
			"International character handling",
			"Accent mark awareness",
			"Foreign word patterns",
		},
	},
	{
		ID:               30,
		Name:             "Legal Text",
		Description:      "Legal document and contract language",
		Difficulty:       model.Advanced,
		RequiredWPM:      31,
		RequiredAccuracy: 92,
		Content:          "Whereas the parties agree to the terms herein, notwithstanding any prior agreements, the undersigned hereby acknowledges receipt of said documents.",
		Tips: []string{
			"Legal terminology accuracy",
			"Formal document speed",
			"Complex sentence structure",
		},
	},
	{
		ID:               31,
		Name:             "Medical Terminology",
		Description:      "Healthcare and medical vocabulary",
		Difficulty:       model.Advanced,
		RequiredWPM:      29,
		RequiredAccuracy: 93,
		Content:          "diagnosis prognosis prescription medication dosage symptoms treatment therapy rehabilitation cardiovascular respiratory",
		Tips: []string{
			"Medical term precision",
			"Healthcare vocabulary",
			"Complex medical words",
		},
	},
	{
		ID:               32,
		Name:             "Financial Reports",
		Description:      "Financial and accounting text",
		Difficulty:       model.Advanced,
		RequiredWPM:      33,
		RequiredAccuracy: 91,
		Content:          "Q3 revenue increased 15.7% year-over-year to $2.4 million. Operating expenses decreased 8.2% while net profit margin improved to 12.3%.",
		Tips: []string{
			"Financial data accuracy",
			"Percentage and decimal precision",
			"Business metrics speed",
		},
	},
	{
		ID:               33,
		Name:             "Academic Citations",
		Description:      "Bibliography and citation formats",
		Difficulty:       model.Advanced,
		RequiredWPM:      30,
		RequiredAccuracy: 93,
		Content:          "Smith, J. (2023). Advanced Typing Techniques. Journal of Digital Literacy, 15(3), 45-62. doi:10.1234/jdl.2023.15.3.45",
		Tips: []string{
			"Citation format accuracy",
			"Academic punctuation",
			"Reference precision",
		},
	},
	{
		ID:               34,
		Name:             "Poetry and Literature",
		Description:      "Literary text with varied formatting",
		Difficulty:       model.Advanced,
		RequiredWPM:      34,
		RequiredAccuracy: 89,
		Content:          "Two roads diverged in a yellow wood, / And sorry I could not travel both / And be one traveler, long I stood / And looked down one as far as I could",
		Tips: []string{
			"Literary rhythm",
			"Poetic line breaks",
			"Artistic expression speed",
		},
	},
	{
		ID:               35,
		Name:             "Technical Documentation",
		Description:      "Software documentation and manuals",
		Difficulty:       model.Advanced,
		RequiredWPM:      32,
		RequiredAccuracy: 91,
		Content:          "To configure the API endpoint, navigate to Settings > Advanced > API Configuration. Enter your authentication token and set the timeout value to 30 seconds.",
		Tips: []string{
			"Technical instruction clarity",
			"Step-by-step accuracy",
			"Documentation speed",
		},
	},
	{
		ID:               36,
		Name:             "Multilingual Text",
		Description:      "Mixed language content",
		Difficulty:       model.Advanced,
		RequiredWPM:      30,
		RequiredAccuracy: 88,
		Content:          "Hello, bonjour, hola, guten tag, konnichiwa, namaste, shalom, salaam alaikum, ciao, aloha, zdravstvuyte",
		Tips: []string{
			"Language switching",
			"International greetings",
			"Cultural vocabulary",
		},
	},
	{
		ID:               37,
		Name:             "Complex Punctuation",
		Description:      "Advanced punctuation and formatting",
		Difficulty:       model.Advanced,
		RequiredWPM:      31,
		RequiredAccuracy: 90,
		Content:          "The CEO announced—after much deliberation—that the merger would proceed; however, several conditions must be met (see Appendix A).",
		Tips: []string{
			"Advanced punctuation marks",
			"Complex sentence structure",
			"Professional formatting",
		},
	},
	{
		ID:               38,
		Name:             "Speed Challenge",
		Description:      "High-speed typing test",
		Difficulty:       model.Advanced,
		RequiredWPM:      40,
		RequiredAccuracy: 88,
		Content:          "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs. How vexingly quick daft zebras jump!",
		Tips: []string{
			"Maximum speed focus",
			"Maintain accuracy at speed",
			"Rhythm and flow",
		},
	},
	{
		ID:               39,
		Name:             "Error Correction",
		Description:      "Typing with deliberate error correction",
		Difficulty:       model.Advanced,
		RequiredWPM:      33,
		RequiredAccuracy: 95,
		Content:          "Accuracy is more important than speed when learning to type. Focus on getting every character correct before increasing your typing pace.",
		Tips: []string{
			"Perfect accuracy focus",
			"Error prevention",
			"Quality over speed",
		},
	},
	{
		ID:               40,
		Name:             "Advanced Assessment",
		Description:      "Comprehensive advanced skills evaluation",
		Difficulty:       model.Advanced,
		RequiredWPM:      38,
		RequiredAccuracy: 92,
		Content:          "You have successfully completed the advanced typing levels! Your skills now include complex punctuation, special characters, and various text types. The expert levels will push your abilities to professional standards with specialized content and higher performance requirements.",
		Tips: []string{
			"Demonstrate mastery",
			"Prepare for expert level",
			"Professional typing standards",
		},
	},
	{
		ID:               41,
		Name:             "Professional Transcription",
		Description:      "Transcribe complex professional content",
		Difficulty:       model.Expert,
		RequiredWPM:      40,
		RequiredAccuracy: 95,
		Content:          "The quarterly board meeting will convene at 9:00 AM EST on March 15th, 2024. Agenda items include: budget review, strategic planning, personnel updates, and Q1 projections.",
		Tips: []string{
			"Professional transcription speed",
			"Meeting note accuracy",
			"Business communication",
		},
	},
	{
		ID:               42,
		Name:             "Live Captioning",
		Description:      "Real-time captioning simulation",
		Difficulty:       model.Expert,
		RequiredWPM:      45,
		RequiredAccuracy: 93,
		Content:          "Ladies and gentlemen, welcome to today's presentation. We'll be discussing the latest developments in artificial intelligence and machine learning technologies.",
		Tips: []string{
			"Real-time typing speed",
			"Live event accuracy",
			"Continuous flow",
		},
	},
	{
		ID:               43,
		Name:             "Court Reporting",
		Description:      "Legal proceeding transcription",
		Difficulty:       model.Expert,
		RequiredWPM:      42,
		RequiredAccuracy: 97,
		Content:          "The witness testified under oath that on the evening of January 10th, approximately 8:30 PM, they observed the defendant leaving the premises through the rear exit.",
		Tips: []string{
			"Legal accuracy standards",
			"Testimony precision",
			"Court reporting speed",
		},
	},
	{
		ID:               44,
		Name:             "Medical Dictation",
		Description:      "Medical report transcription",
		Difficulty:       model.Expert,
		RequiredWPM:      38,
		RequiredAccuracy: 98,
		Content:          "Patient presents with acute myocardial infarction. Administered nitroglycerin sublingual. Vital signs: BP 140/90, HR 110, RR 22, O2 sat 95% on room air.",
		Tips: []string{
			"Medical terminology precision",
			"Healthcare accuracy",
			"Clinical documentation",
		},
	},
	{
		ID:               45,
		Name:             "Simultaneous Translation",
		Description:      "Multi-language typing exercise",
		Difficulty:       model.Expert,
		RequiredWPM:      35,
		RequiredAccuracy: 94,
		Content:          "English: Good morning. French: Bonjour. Spanish: Buenos días. German: Guten Morgen. Italian: Buongiorno. Portuguese: Bom dia.",
		Tips: []string{
			"Language switching speed",
			"International communication",
			"Cultural accuracy",
		},
	},
	{
		ID:               46,
		Name:             "Data Processing",
		Description:      "High-volume data entry",
		Difficulty:       model.Expert,
		RequiredWPM:      43,
		RequiredAccuracy: 99,
		Content:          "ID001: John Smith, DOB: 01/15/1985, SSN: 123-45-6789, Phone: (555) 123-4567, Email: john.smith@email.com",
		Tips: []string{
			"Data entry perfection",
			"Zero-error tolerance",
			"High-speed accuracy",
		},
	},
	{
		ID:               47,
		Name:             "Programming Marathon",
		Description:      "Extended coding session",
		Difficulty:       model.Expert,
		RequiredWPM:      40,
		RequiredAccuracy: 96,
		Content:          "class TypingTrainer { constructor(level) { this.level = level; this.wpm = 0; this.accuracy = 0; } calculateScore() { return this.wpm * (this.accuracy / 100); } }",
		Tips: []string{
			"Code accuracy perfection",
			"Programming efficiency",
			"Syntax precision",
		},
	},
	{
		ID:               48,
		Name:             "Executive Summary",
		Description:      "High-level business communication",
		Difficulty:       model.Expert,
		RequiredWPM:      44,
		RequiredAccuracy: 94,
		Content:          "Executive Summary: Our comprehensive analysis indicates a 23% increase in market share, driven by strategic partnerships and innovative product development. ROI exceeded projections by 15%.",
		Tips: []string{
			"Executive communication speed",
			"Business summary accuracy",
			"Professional presentation",
		},
	},
	{
		ID:               49,
		Name:             "Crisis Communication",
		Description:      "Urgent communication typing",
		Difficulty:       model.Expert,
		RequiredWPM:      47,
		RequiredAccuracy: 92,
		Content:          "URGENT: System maintenance scheduled for tonight 11 PM - 3 AM EST. All users will be logged out automatically. Please save your work and plan accordingly. Contact IT for questions.",
		Tips: []string{
			"Urgent communication speed",
			"Crisis response accuracy",
			"Time-critical typing",
		},
	},
	{
		ID:               50,
		Name:             "Master Certification",
		Description:      "Final mastery assessment",
		Difficulty:       model.Expert,
		RequiredWPM:      50,
		RequiredAccuracy: 95,
		Content:          "Congratulations! You have achieved typing mastery. Your dedication and practice have developed professional-level skills. You can now type efficiently in any professional environment, handle complex documents, and maintain accuracy under pressure. Welcome to the elite group of expert typists!",
		Tips: []string{
			"Demonstrate complete mastery",
			"Professional typing excellence",
			"Expert-level performance",
		},
	},
}
