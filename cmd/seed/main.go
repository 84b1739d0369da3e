package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"students-api/internal/config"
	"students-api/internal/database"
	"students-api/internal/logger"
	"students-api/internal/seed"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Rebuild the students database with generated data",
	Long: `seed drops the groups, students, courses and student_courses tables,
recreates them and fills them with randomly generated groups, students and
enrollments. Defaults come from the same environment variables as the server.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().Int("students", 0, "number of students to generate (default SEED_STUDENTS)")
	rootCmd.Flags().Int("groups", 0, "number of groups to generate (default SEED_GROUPS)")
	rootCmd.Flags().Int("courses", 0, "number of catalogue courses to insert (default SEED_COURSES)")
	rootCmd.Flags().String("names-file", "", "YAML file with first_names, last_names and courses lists")
	rootCmd.Flags().Uint64("seed", 0, "random seed; 0 picks a random one")
	rootCmd.Flags().Int("capacity", seed.MaxGroupSize, "maximum number of students per group")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	sizes := seed.Sizes{Students: cfg.SeedStudents, Groups: cfg.SeedGroups, Courses: cfg.SeedCourses}
	if cmd.Flags().Changed("students") {
		sizes.Students, _ = cmd.Flags().GetInt("students")
	}
	if cmd.Flags().Changed("groups") {
		sizes.Groups, _ = cmd.Flags().GetInt("groups")
	}
	if cmd.Flags().Changed("courses") {
		sizes.Courses, _ = cmd.Flags().GetInt("courses")
	}

	namesFile := cfg.SeedNamesFile
	if cmd.Flags().Changed("names-file") {
		namesFile, _ = cmd.Flags().GetString("names-file")
	}
	randomSeed := cfg.SeedRandomSeed
	if cmd.Flags().Changed("seed") {
		randomSeed, _ = cmd.Flags().GetUint64("seed")
	}
	capacity, _ := cmd.Flags().GetInt("capacity")

	pool, err := seed.LoadNamePool(namesFile)
	if err != nil {
		return err
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:    gormlogger.Silent,
		SkipMigrate: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	seeder := seed.NewSeeder(db, seed.NewGenerator(randomSeed, pool), sizes, seed.WithCapacity(capacity))
	result, err := seeder.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d groups, %d courses, %d students and %d enrollments\n",
		result.Groups, result.Courses, result.Students, result.Enrollments)
	if result.Dropped > 0 {
		fmt.Printf("%d students did not fit into any group and were skipped\n", result.Dropped)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
