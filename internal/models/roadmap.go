// Package models contains domain types for Waypoint entities.
// Remote synchronization lives in internal/app; API encodings in
// internal/adapters/*.
package models

import "fmt"

// WeeksTotal is the length of the roadmap.
const WeeksTotal = 24

// WeeksPerPhase is the fixed phase width: weeks 1-4 are phase 1,
// 5-8 phase 2, and so on through phase 6.
const WeeksPerPhase = 4

// RoadmapEntry represents a single week of the learning roadmap.
type RoadmapEntry struct {
	Week          int    // natural key, 1..24, unique
	Phase         int    // derived: ((Week-1)/WeeksPerPhase)+1
	Title         string // short topic label
	PhaseLabel    string // descriptive phase string shown per row
	ResourceURL   string // optional dataset/reference link
	RepoKey       string // optional key into the project repository set
	TimelineLabel string // display string, e.g. "Week 5"
	DetailText    string // optional bullet-style elaboration
}

// PhaseFor derives the phase number from a week number.
func PhaseFor(week int) int {
	return ((week - 1) / WeeksPerPhase) + 1
}

// Priority tiers assigned by week position.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// PriorityFor returns the priority tier for a week: the first two
// phases are high, the middle two medium, the rest low.
func PriorityFor(week int) string {
	switch {
	case week <= 8:
		return PriorityHigh
	case week <= 16:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// phaseSelectNames are the select option names used for the phase
// column in the remote database, indexed by phase-1.
var phaseSelectNames = [6]string{
	"Month 1: SQL & ETL Basics",
	"Month 2: Data Warehousing",
	"Month 3: DataOps & Automation",
	"Month 4: Big Data Processing",
	"Month 5: Real-Time Streaming",
	"Month 6: Capstone Projects",
}

// phaseSelectColors pair with phaseSelectNames when the column is
// first created.
var phaseSelectColors = [6]string{"blue", "green", "orange", "purple", "pink", "red"}

// PhaseSelectName returns the remote select option name for a phase.
func PhaseSelectName(phase int) string {
	if phase < 1 || phase > len(phaseSelectNames) {
		return ""
	}
	return phaseSelectNames[phase-1]
}

// PhaseSelectColor returns the option color paired with PhaseSelectName.
func PhaseSelectColor(phase int) string {
	if phase < 1 || phase > len(phaseSelectColors) {
		return ""
	}
	return phaseSelectColors[phase-1]
}

// Dataset reference URLs shared by several weeks.
const (
	superstoreURL = "https://www.kaggle.com/datasets/vivek468/superstore-dataset-final"
	covidURL      = "https://github.com/CSSEGISandData/COVID-19"
	nasaLogsURL   = "https://www.kaggle.com/datasets/loganalyst/nasa-access-log"
)

// BuildRoadmap constructs the full 24-week roadmap. It is a pure
// function of no input: the entries are the static curriculum, built
// fresh on every run and never persisted locally.
func BuildRoadmap() []RoadmapEntry {
	var entries []RoadmapEntry
	entries = append(entries, phase1ETLFoundations()...)
	entries = append(entries, phase2DataWarehousing()...)
	entries = append(entries, phase3DataOps()...)
	entries = append(entries, phase4Spark()...)
	entries = append(entries, phase5Streaming()...)
	entries = append(entries, phase6Capstone()...)
	return entries
}

func entry(week int, title, phaseLabel, resourceURL, repoKey, detail string) RoadmapEntry {
	return RoadmapEntry{
		Week:          week,
		Phase:         PhaseFor(week),
		Title:         title,
		PhaseLabel:    phaseLabel,
		ResourceURL:   resourceURL,
		RepoKey:       repoKey,
		TimelineLabel: timelineLabel(week),
		DetailText:    detail,
	}
}

func timelineLabel(week int) string {
	return fmt.Sprintf("Week %d", week)
}

func phase1ETLFoundations() []RoadmapEntry {
	const label = "Month 1: SQL, ETL Basics & AWS Fundamentals"
	return []RoadmapEntry{
		entry(1, "SQL basics + practice (50 problems)", label, superstoreURL, "retail-sales-etl",
			"• Learn SELECT, WHERE, GROUP BY, JOINs, aggregate functions\n• Resources: LeetCode Database problems, SQLZoo, Mode Analytics SQL tutorials\n• Deliverable: Solve 50 SQL problems"),
		entry(2, "Python Pandas + boto3, Upload to S3", label, superstoreURL, "retail-sales-etl",
			"• Learn dataframes, cleaning, joins in Pandas\n• Learn boto3 basics (upload, download, list S3 objects)\n• Deliverable: Python script to clean CSV data and upload to S3 bucket"),
		entry(3, "Glue basics + Athena querying", label, superstoreURL, "retail-sales-etl",
			"• Learn AWS Glue (crawlers, jobs)\n• Learn Athena (querying S3 data with SQL)\n• Deliverable: Create a Glue crawler + query S3 dataset with Athena"),
		entry(4, "Build ETL end-to-end", label, superstoreURL, "retail-sales-etl",
			"• Combine S3 + Glue + Athena\n• Deliverable: Ingest CSV → S3 → Glue → Athena query"),
	}
}

func phase2DataWarehousing() []RoadmapEntry {
	const label = "Month 2: Data Warehousing"
	return []RoadmapEntry{
		entry(5, "Design star schema (fact/dims)", label, superstoreURL, "sales-data-warehouse",
			"• Learn dimensional modeling (Kimball's approach)\n• Deliverable: Create ERD for Sales dataset (fact_sales, dim_customer, dim_product)"),
		entry(6, "Load to Redshift with COPY", label, superstoreURL, "sales-data-warehouse",
			"• Learn Redshift basics + COPY command from S3\n• Deliverable: Load Sales data into Redshift fact/dim tables"),
		entry(7, "Complex SQL (window functions, CTEs, performance tuning)", label, superstoreURL, "sales-data-warehouse",
			"• Learn ROW_NUMBER, RANK, LEAD/LAG, recursive queries\n• Deliverable: Write 10 analytical queries"),
		entry(8, "QuickSight dashboard", label, superstoreURL, "sales-data-warehouse",
			"• Learn Amazon QuickSight basics\n• Deliverable: Build sales performance dashboard"),
	}
}

func phase3DataOps() []RoadmapEntry {
	const label = "Month 3: Data Pipelines & Automation"
	return []RoadmapEntry{
		entry(9, "Airflow DAG (daily COVID data → S3)", label, covidURL, "covid-dataops-pipeline",
			"• Learn Airflow basics (DAGs, operators, scheduling)\n• Deliverable: DAG that fetches daily COVID API → stores in S3"),
		entry(10, "Add Glue transform + Redshift load", label, covidURL, "covid-dataops-pipeline",
			"• Extend DAG: ingest → transform with Glue → load into Redshift\n• Deliverable: Complete ETL pipeline with monitoring"),
		entry(11, "CI/CD (Bitbucket + CodePipeline)", label, covidURL, "covid-dataops-pipeline",
			"• Learn version control for Airflow DAGs\n• Deliverable: Set up Git → CodePipeline for Airflow project"),
		entry(12, "Monitoring with CloudWatch alerts", label, covidURL, "covid-dataops-pipeline",
			"• Set up CloudWatch metrics for S3/Glue/Redshift\n• Deliverable: Trigger alert when job fails"),
	}
}

func phase4Spark() []RoadmapEntry {
	const label = "Month 4: Big Data Processing"
	return []RoadmapEntry{
		entry(13, "PySpark basics (DataFrames/RDDs)", label, nasaLogsURL, "log-analytics-spark",
			"• Learn Spark DataFrame ops, transformations, actions\n• Deliverable: Clean & aggregate logs dataset with PySpark"),
		entry(14, "Run job on EMR/Databricks", label, nasaLogsURL, "log-analytics-spark",
			"• Learn how to run PySpark jobs on EMR\n• Deliverable: Submit PySpark job to EMR"),
		entry(15, "Aggregations: top URLs, errors, traffic/hour", label, nasaLogsURL, "log-analytics-spark",
			"• Advanced Spark analytics\n• Deliverable: Spark job that produces log analytics summary"),
		entry(16, "Store to S3 + query in Athena (compare performance)", label, nasaLogsURL, "log-analytics-spark",
			"• Performance optimization techniques\n• Deliverable: Output aggregated logs to S3, query with Athena"),
	}
}

func phase5Streaming() []RoadmapEntry {
	const label = "Month 5: Real-Time Streaming"
	return []RoadmapEntry{
		entry(17, "Kinesis basics + event producer", label, "", "clickstream-realtime-analytics",
			"• Learn Kinesis Data Streams fundamentals\n• Deliverable: Push dummy event data into Kinesis stream"),
		entry(18, "Lambda → S3 (raw events)", label, "", "clickstream-realtime-analytics",
			"• Build serverless data ingestion\n• Deliverable: Lambda function that consumes Kinesis → stores to S3"),
		entry(19, "Spark Structured Streaming aggregations", label, "", "clickstream-realtime-analytics",
			"• Real-time data processing with Spark\n• Deliverable: Real-time aggregation of streaming events"),
		entry(20, "QuickSight live dashboard", label, "", "clickstream-realtime-analytics",
			"• Real-time visualization and monitoring\n• Deliverable: Real-time dashboard on clickstream data"),
	}
}

func phase6Capstone() []RoadmapEntry {
	const label = "Month 6: Capstone Projects"
	return []RoadmapEntry{
		entry(21, "E-commerce Data Platform: Define architecture (batch + streaming)", label, "", "ecommerce-data-platform",
			"• Design complete data platform architecture\n• Architecture: Batch ETL (Glue → Redshift + Airflow DAG)\n• Streaming (Kinesis → Lambda → S3 + Spark Streaming)\n• Reporting (QuickSight dashboard)\n• Deliverable: Architecture diagram + GitHub repo + Resume bullets"),
		entry(22, "E-commerce Data Platform: Build batch ETL (S3→Glue→Redshift) + DAG", label, "", "ecommerce-data-platform",
			"• Implement batch processing pipeline\n• Deliverable: Complete batch ETL with Airflow orchestration and data quality checks"),
		entry(23, "E-commerce Data Platform: Add streaming (Kinesis→Spark→Redshift)", label, "", "ecommerce-data-platform",
			"• Implement real-time processing\n• Deliverable: Real-time streaming pipeline with monitoring and alerting"),
		entry(24, "E-commerce Data Platform: Docs + Repo polish + Resume bullets", label, "", "ecommerce-data-platform",
			"• Finalize project documentation and portfolio\n• Deliverable: Complete documentation, polished GitHub repo, QuickSight reporting dashboard, and resume bullets highlighting your data engineering skills"),
	}
}
