// Desktop alternate entry: records daily condition rows into local CSV
// files for athletes without network access. Second persistence path, not
// synced with the spreadsheet-backed apps.
package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bkiskm0705-stack/nutrition-app/desktop"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

var rootCmd = &cobra.Command{
	Use:   "condition-desktop",
	Short: "Offline daily condition entry (local CSV)",
}

var (
	flagWeight       string
	flagBodyFat      string
	flagSleep        string
	flagBowel        string
	flagBowelState   string
	flagExerciseTime string
	flagExerciseNote string
	flagMealNote     string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Append today's record to " + desktop.DailyFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := desktop.DailyEntry{
			Date:         time.Now().Format("2006-01-02"),
			Weight:       flagWeight,
			BodyFat:      flagBodyFat,
			Sleep:        flagSleep,
			Bowel:        flagBowel,
			BowelState:   flagBowelState,
			ExerciseTime: flagExerciseTime,
			ExerciseNote: flagExerciseNote,
			MealNote:     flagMealNote,
		}
		if entry.Weight == "" {
			if err := recordForm(&entry); err != nil {
				return err
			}
		}
		if err := desktop.AppendDaily(desktop.DailyFile, entry); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("記録を保存しました"))
		return nil
	},
}

func recordForm(entry *desktop.DailyEntry) error {
	sleepOptions := make([]huh.Option[string], 0, 49)
	for i := 0; i <= 48; i++ {
		v := strconv.FormatFloat(float64(i)/2, 'f', -1, 64)
		sleepOptions = append(sleepOptions, huh.NewOption(v, v))
	}
	entry.Sleep = "7"
	entry.Bowel = "あり"
	entry.BowelState = "普通"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("体重 (kg)").Placeholder("例: 65.5").Value(&entry.Weight),
			huh.NewInput().Title("体脂肪率 (%)").Placeholder("例: 12.3").Value(&entry.BodyFat),
			huh.NewSelect[string]().Title("睡眠時間 (h)").Options(sleepOptions...).Value(&entry.Sleep),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("排便").
				Options(huh.NewOptions("あり", "なし")...).Value(&entry.Bowel),
			huh.NewSelect[string]().Title("便の状態").
				Options(huh.NewOptions("普通", "柔らかい", "下痢", "硬い")...).Value(&entry.BowelState),
		),
		huh.NewGroup(
			huh.NewInput().Title("運動時間 (分)").Value(&entry.ExerciseTime),
			huh.NewInput().Title("運動内容").Placeholder("例: ジョグ").Value(&entry.ExerciseNote),
			huh.NewInput().Title("食事メモ").Value(&entry.MealNote),
		),
	).Run()
}

var (
	flagName   string
	flagDOB    string
	flagHeight string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Save the user profile (overwrites " + desktop.ProfileFile + ")",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := desktop.Profile{Name: flagName, DOB: flagDOB, Height: flagHeight}
		if p.Name == "" {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().Title("名前").Value(&p.Name),
				huh.NewInput().Title("生年月日").Placeholder("1990-01-01").Value(&p.DOB),
				huh.NewInput().Title("身長 (cm)").Placeholder("例: 175.5").Value(&p.Height),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}
		if err := desktop.SaveProfile(desktop.ProfileFile, p); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("プロフィールを登録しました"))
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the latest saved records",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := desktop.LoadRecent(desktop.DailyFile, 5)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("データがまだありません")
			return nil
		}
		for _, row := range rows {
			fmt.Println(row)
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().StringVar(&flagWeight, "weight", "", "weight in kg")
	recordCmd.Flags().StringVar(&flagBodyFat, "body-fat", "", "body fat percentage")
	recordCmd.Flags().StringVar(&flagSleep, "sleep", "7", "sleep hours")
	recordCmd.Flags().StringVar(&flagBowel, "bowel", "あり", "bowel movement (あり/なし)")
	recordCmd.Flags().StringVar(&flagBowelState, "bowel-state", "普通", "stool state")
	recordCmd.Flags().StringVar(&flagExerciseTime, "exercise-time", "", "exercise minutes")
	recordCmd.Flags().StringVar(&flagExerciseNote, "exercise", "", "exercise description")
	recordCmd.Flags().StringVar(&flagMealNote, "meal", "", "meal memo")

	profileCmd.Flags().StringVar(&flagName, "name", "", "athlete name")
	profileCmd.Flags().StringVar(&flagDOB, "dob", "", "date of birth")
	profileCmd.Flags().StringVar(&flagHeight, "height", "", "height in cm")

	rootCmd.AddCommand(recordCmd, profileCmd, logCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
