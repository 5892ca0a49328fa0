package cmd

import (
	"log"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oureatools/ourea/models"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Perform automatic catalog migration",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		defer db.Close()
		migrateDB(db)
	},
}

// openDB opens the conversion catalog named by the configuration.
func openDB() *gorm.DB {
	db, err := gorm.Open("sqlite3", viper.GetString("db"))
	if err != nil {
		log.Fatal(err)
	}
	return db
}

func migrateDB(db *gorm.DB) {
	db.AutoMigrate(&models.Conversion{})
}

// dbRecorder feeds finished conversions into the catalog.
type dbRecorder struct {
	db *gorm.DB
}

func (r dbRecorder) Record(c *models.Conversion) error {
	return c.Create(r.db)
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
