package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/photo-mosaic/internal/colorspace"
	"github.com/ironsheep/photo-mosaic/internal/library"
	"github.com/ironsheep/photo-mosaic/internal/mosaic"
)

var cfgFile string

// rootCmd represents the photo-mosaic command
var rootCmd = &cobra.Command{
	Use:   "photo-mosaic SOURCE LIBRARY_DIR OUTPUT",
	Short: "Build a photo mosaic from a library of images",
	Long: `photo-mosaic rebuilds SOURCE as a grid of square tiles, filling each
tile with the image from LIBRARY_DIR whose average color is perceptually
closest (CIEDE2000 in CIE L*a*b* space). Every library image is used at
most once, so the library must hold at least as many images as the
mosaic has tiles.

The output format is inferred from OUTPUT's extension (.png, .jpg,
.jpeg, or .bmp) and validated before any work starts. Library files
that cannot be decoded as images are skipped with a notice on stderr.`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	RunE:         runMosaic,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.photo-mosaic.yaml)")
	rootCmd.Flags().IntP("tiles", "t", 40, "number of tiles along the shorter side of the source")
	rootCmd.Flags().Int("jpeg-quality", 90, "quality for JPEG output (1-100)")
	rootCmd.Flags().Float64Slice("white-point",
		[]float64{colorspace.D65.X, colorspace.D65.Y, colorspace.D65.Z},
		"XYZ reference white used for Lab conversion")

	viper.BindPFlag("tiles", rootCmd.Flags().Lookup("tiles"))
	viper.BindPFlag("jpeg-quality", rootCmd.Flags().Lookup("jpeg-quality"))
	viper.BindPFlag("white-point", rootCmd.Flags().Lookup("white-point"))
}

// initConfig reads in the config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".photo-mosaic")
	}

	viper.SetEnvPrefix("PHOTO_MOSAIC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("using config file %s", viper.ConfigFileUsed())
	}
}

func runMosaic(cmd *cobra.Command, args []string) error {
	sourcePath, libraryDir, outputPath := args[0], args[1], args[2]

	// Validate the output format before any expensive work.
	enc, err := library.EncoderForPath(outputPath, viper.GetInt("jpeg-quality"))
	if err != nil {
		return err
	}

	white, err := whitePoint(cast.ToFloat64Slice(viper.Get("white-point")))
	if err != nil {
		return err
	}

	src, err := library.LoadImage(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to load source image %s: %w", sourcePath, err)
	}

	lib, err := library.Scan(libraryDir, white)
	if err != nil {
		return err
	}
	log.Printf("loaded %d library images from %s", lib.Size(), libraryDir)

	out, err := mosaic.Render(src, lib.Snapshot(), mosaic.Options{
		MinTilesPerSide: viper.GetInt("tiles"),
		White:           white,
	})
	if err != nil {
		return err
	}

	if err := library.Save(outputPath, out, enc); err != nil {
		return err
	}

	log.Printf("wrote %dx%d mosaic to %s", out.Bounds().Dx(), out.Bounds().Dy(), outputPath)
	return nil
}

// whitePoint validates a reference white given as an XYZ triple.
func whitePoint(values []float64) (colorspace.ReferenceWhite, error) {
	if len(values) != 3 {
		return colorspace.ReferenceWhite{}, fmt.Errorf("white point must have exactly 3 components, got %d", len(values))
	}
	for _, v := range values {
		if v <= 0 {
			return colorspace.ReferenceWhite{}, fmt.Errorf("white point components must be positive, got %v", values)
		}
	}
	return colorspace.ReferenceWhite{X: values[0], Y: values[1], Z: values[2]}, nil
}
